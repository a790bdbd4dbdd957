package pipeline

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/magic-sketchbook/backend/pipeline/synthesizer"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConfig, KindOf(configError("missing project")))
	assert.Equal(t, KindPolicy, KindOf(policyError("rejected", synthesizer.ErrNoImage)))
	assert.Equal(t, KindUpstream, KindOf(upstreamError("boom", errors.New("boom"))))
	assert.Equal(t, KindUpstream, KindOf(errors.New("plain error")))
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := upstreamError("code", inner)
	assert.Equal(t, "inner", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestClassifySynthesis(t *testing.T) {
	assert.Equal(t, KindPolicy, KindOf(classifySynthesis(synthesizer.ErrNoImage)))
	assert.Equal(t, KindPolicy, KindOf(classifySynthesis(errors.Wrap(synthesizer.ErrNoImage, "wrapped"))))
	assert.Equal(t, KindUpstream, KindOf(classifySynthesis(errors.New("network down"))))
}
