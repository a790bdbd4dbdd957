package synthesizer

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/magic-sketchbook/backend/common/config"
)

const imagenModel = "imagen-3.0-generate-002"

// ErrNoImage means the model returned zero candidates, which in practice is
// the safety filter rejecting the prompt. Callers surface it to the user as a
// designed outcome, not a server failure.
var ErrNoImage = errors.New("no image generated")

// Synthesizer renders prompts with Imagen on Vertex AI. Every prompt is
// wrapped in the house style template before generation.
type Synthesizer struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Synthesizer {
	return &Synthesizer{cfg: cfg}
}

func (s *Synthesizer) Synthesize(ctx context.Context, prompt string) ([]byte, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  s.cfg.ProjectID,
		Location: s.cfg.Location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "init vertex genai client failed")
	}

	resp, err := client.Models.GenerateImages(ctx, imagenModel, WrapPrompt(prompt), &genai.GenerateImagesConfig{
		NumberOfImages:    1,
		AspectRatio:       "4:3",
		SafetyFilterLevel: genai.SafetyFilterLevelBlockMediumAndAbove,
		PersonGeneration:  genai.PersonGenerationAllowAdult,
		OutputMIMEType:    "image/png",
	})
	if err != nil {
		return nil, errors.Wrap(err, "imagen generate failed")
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, ErrNoImage
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}

// WrapPrompt applies the fixed style template around a caller prompt.
func WrapPrompt(prompt string) string {
	return fmt.Sprintf(
		"A high-quality, cute illustration of %s. "+
			"Consistent children's picture-book art style, vibrant colors, soft lighting, "+
			"4k resolution, friendly and suitable for young children.",
		prompt,
	)
}
