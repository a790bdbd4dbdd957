package dialogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magic-sketchbook/backend/common/config"
)

func TestSplitDirective(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		message    string
		drawPrompt string
	}{
		{
			name:       "marker present",
			reply:      "그릴게요! DRAW_PROMPT: a cute cat",
			message:    "그릴게요!",
			drawPrompt: "a cute cat",
		},
		{
			name:    "no marker",
			reply:   "안녕! 무엇을 그려볼까?",
			message: "안녕! 무엇을 그려볼까?",
		},
		{
			name:       "first occurrence wins",
			reply:      "ok DRAW_PROMPT: a dog DRAW_PROMPT: a cat",
			message:    "ok",
			drawPrompt: "a dog DRAW_PROMPT: a cat",
		},
		{
			name:       "marker at start",
			reply:      "DRAW_PROMPT: a red balloon",
			message:    "",
			drawPrompt: "a red balloon",
		},
		{
			name:       "whitespace trimmed",
			reply:      "  sure!  DRAW_PROMPT:   a happy sun  ",
			message:    "sure!",
			drawPrompt: "a happy sun",
		},
		{
			name:    "empty reply",
			reply:   "",
			message: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, drawPrompt := SplitDirective(tt.reply)
			assert.Equal(t, tt.message, message)
			assert.Equal(t, tt.drawPrompt, drawPrompt)
		})
	}
}

func TestConsultWithoutAgent(t *testing.T) {
	c := New(&config.Config{ProjectID: "p", Location: "us-central1"})
	message, drawPrompt, err := c.Consult(context.Background(), "default-session", "고양이 그려줘", "")
	require.NoError(t, err)
	assert.Equal(t, notConfiguredMessage, message)
	assert.Empty(t, drawPrompt)
}

func TestSessionPath(t *testing.T) {
	c := New(&config.Config{ProjectID: "proj", Location: "us-central1", AgentID: "agent"})
	assert.Equal(t,
		"projects/proj/locations/us-central1/agents/agent/sessions/default-session",
		c.sessionPath("default-session"))
}

func TestEndpoint(t *testing.T) {
	c := New(&config.Config{Location: "us-central1"})
	assert.Equal(t, "us-central1-dialogflow.googleapis.com:443", c.endpoint())

	c = New(&config.Config{Location: "global"})
	assert.Equal(t, "dialogflow.googleapis.com:443", c.endpoint())
}
