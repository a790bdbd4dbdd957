package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenRequestID(t *testing.T) {
	a := GenRequestID()
	b := GenRequestID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestMessageWithRequestId(t *testing.T) {
	assert.Equal(t, "boom (request id: abc)", MessageWithRequestId("boom", "abc"))
}

func TestAssignOrDefault(t *testing.T) {
	assert.Equal(t, "x", AssignOrDefault("x", "d"))
	assert.Equal(t, "d", AssignOrDefault("", "d"))
}
