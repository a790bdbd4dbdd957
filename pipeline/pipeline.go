package pipeline

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/magic-sketchbook/backend/common/config"
	"github.com/magic-sketchbook/backend/common/logger"
	"github.com/magic-sketchbook/backend/pipeline/describer"
	"github.com/magic-sketchbook/backend/pipeline/dialogue"
	"github.com/magic-sketchbook/backend/pipeline/publisher"
	"github.com/magic-sketchbook/backend/pipeline/synthesizer"
)

// Describer turns sketch bytes into a short natural-language description.
type Describer interface {
	Describe(ctx context.Context, image []byte) (string, error)
}

// Consultant sends a chat turn to the dialogue agent and returns the
// user-visible message plus the draw directive extracted from the reply
// (empty when the agent did not ask to draw).
type Consultant interface {
	Consult(ctx context.Context, sessionID string, userText string, description string) (message string, drawPrompt string, err error)
}

// Synthesizer renders a prompt into image bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string) ([]byte, error)
}

// Publisher stores image bytes and returns a public URL.
type Publisher interface {
	Publish(ctx context.Context, image []byte) (string, error)
}

// Pipeline chains the external AI and storage services. It holds no mutable
// state; every call runs independently.
type Pipeline struct {
	cfg         *config.Config
	describer   Describer
	consultant  Consultant
	synthesizer Synthesizer
	publisher   Publisher
}

func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:         cfg,
		describer:   describer.New(cfg),
		consultant:  dialogue.New(cfg),
		synthesizer: synthesizer.New(cfg),
		publisher:   publisher.New(cfg),
	}
}

// NewWithStages wires explicit stage implementations. Tests use it to swap in
// fakes for the external services.
func NewWithStages(cfg *config.Config, d Describer, c Consultant, s Synthesizer, p Publisher) *Pipeline {
	return &Pipeline{cfg: cfg, describer: d, consultant: c, synthesizer: s, publisher: p}
}

type SketchResult struct {
	ImageURL    string
	Description string
}

type ChatRequest struct {
	SessionID     string
	UserText      string
	Image         []byte
	GenerateImage bool
}

type ChatResult struct {
	AgentMessage   string
	GeneratedImage string
	DrawPrompt     string
}

// GenerateFromSketch runs the single-shot flow: describe the sketch, render a
// stylized image from the description and publish it.
func (p *Pipeline) GenerateFromSketch(ctx context.Context, image []byte, stylePrompt string) (*SketchResult, error) {
	if p.cfg.ProjectID == "" {
		return nil, configError("missing Google Cloud project id")
	}

	description, err := p.describer.Describe(ctx, image)
	if err != nil {
		return nil, upstreamError("describe_sketch_failed", err)
	}
	logger.Infof(ctx, "sketch described as: %s", description)

	prompt := fmt.Sprintf("%s. Style: %s", description, stylePrompt)
	data, err := p.synthesizer.Synthesize(ctx, prompt)
	if err != nil {
		return nil, classifySynthesis(err)
	}

	url, err := p.publisher.Publish(ctx, data)
	if err != nil {
		return nil, upstreamError("publish_image_failed", err)
	}
	return &SketchResult{ImageURL: url, Description: description}, nil
}

// ChatToDraw runs the conversational flow. The image is optional; synthesis
// only happens when the agent reply carries a draw directive and the caller
// asked for generation.
func (p *Pipeline) ChatToDraw(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	if p.cfg.ProjectID == "" {
		return nil, configError("missing Google Cloud project id")
	}

	description := ""
	if len(req.Image) > 0 {
		d, err := p.describer.Describe(ctx, req.Image)
		if err != nil {
			return nil, upstreamError("describe_sketch_failed", err)
		}
		description = d
		logger.Infof(ctx, "sketch described as: %s", description)
	}

	message, drawPrompt, err := p.consultant.Consult(ctx, req.SessionID, req.UserText, description)
	if err != nil {
		return nil, upstreamError("consult_agent_failed", err)
	}

	result := &ChatResult{AgentMessage: message, DrawPrompt: drawPrompt}
	if drawPrompt == "" || !req.GenerateImage {
		return result, nil
	}

	data, err := p.synthesizer.Synthesize(ctx, drawPrompt)
	if err != nil {
		return nil, classifySynthesis(err)
	}
	url, err := p.publisher.Publish(ctx, data)
	if err != nil {
		return nil, upstreamError("publish_image_failed", err)
	}
	result.GeneratedImage = url
	return result, nil
}

func classifySynthesis(err error) error {
	if errors.Is(err, synthesizer.ErrNoImage) {
		return policyError("image_rejected_by_safety_filter", err)
	}
	return upstreamError("synthesize_image_failed", err)
}
