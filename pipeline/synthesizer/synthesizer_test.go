package synthesizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPrompt(t *testing.T) {
	wrapped := WrapPrompt("a cute cat")
	assert.True(t, strings.Contains(wrapped, "a cute cat"))
	assert.True(t, strings.Contains(wrapped, "picture-book art style"))
	assert.True(t, strings.Contains(wrapped, "soft lighting"))
	assert.True(t, strings.Contains(wrapped, "4k resolution"))
	assert.True(t, strings.Contains(wrapped, "suitable for young children"))
}

func TestWrapPromptKeepsCallerTextIntact(t *testing.T) {
	prompt := "a dragon. Style: watercolor"
	assert.Contains(t, WrapPrompt(prompt), prompt)
}
