package describer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/magic-sketchbook/backend/common/config"
	"github.com/magic-sketchbook/backend/common/image"
)

const visionModel = "gemini-1.5-flash"

// The model is asked, not forced, to keep descriptions child-safe; nothing is
// enforced locally.
const instructionPrompt = "Describe this child's drawing in one short, simple and positive sentence. " +
	"Focus on what the child drew, as a prompt for an illustration. " +
	"Never mention violence, weapons, or adult content."

// Describer sends sketch bytes to Gemini and returns a short description.
type Describer struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Describer {
	return &Describer{cfg: cfg}
}

func (d *Describer) Describe(ctx context.Context, data []byte) (string, error) {
	format, _, _, err := image.SniffFormat(data)
	if err != nil {
		return "", errors.Wrap(err, "unsupported image payload")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(d.cfg.GeminiAPIKey))
	if err != nil {
		return "", errors.Wrap(err, "init genai client failed")
	}
	defer client.Close()

	model := client.GenerativeModel(visionModel)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockOnlyHigh},
	}

	resp, err := model.GenerateContent(ctx, genai.ImageData(format, data), genai.Text(instructionPrompt))
	if err != nil {
		return "", wrapGoogleError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no description returned")
	}

	text := ""
	for i, part := range resp.Candidates[0].Content.Parts {
		if i > 0 {
			text += "\n"
		}
		text += fmt.Sprint(part)
	}
	return strings.TrimSpace(text), nil
}

// wrapGoogleError pulls the readable message out of the layered Google API
// error types before wrapping.
func wrapGoogleError(err error) error {
	if apiErr, ok := err.(*apierror.APIError); ok {
		msg := apiErr.GRPCStatus().Message()
		if msg == "" {
			msg = err.Error()
		}
		return errors.Errorf("gemini: %s", msg)
	}
	if gErr, ok := err.(*googleapi.Error); ok {
		return errors.Errorf("gemini: %s", gErr.Message)
	}
	return errors.Wrap(err, "gemini")
}
