package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GOOGLE_CLOUD_LOCATION", "")
	t.Setenv("DIALOGFLOW_AGENT_ID", "")
	t.Setenv("PORT", "")
	t.Setenv("DEBUG", "")

	cfg := Load()
	assert.Empty(t, cfg.ProjectID)
	assert.Equal(t, "us-central1", cfg.Location)
	assert.Empty(t, cfg.AgentID)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.DebugEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "sketchbook-prod")
	t.Setenv("GOOGLE_CLOUD_LOCATION", "asia-northeast3")
	t.Setenv("DIALOGFLOW_AGENT_ID", "agent-123")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	assert.Equal(t, "sketchbook-prod", cfg.ProjectID)
	assert.Equal(t, "asia-northeast3", cfg.Location)
	assert.Equal(t, "agent-123", cfg.AgentID)
	assert.True(t, cfg.DebugEnabled)
}

func TestBucketName(t *testing.T) {
	cfg := &Config{ProjectID: "sketchbook-prod"}
	assert.Equal(t, "sketchbook-prod-generated-images", cfg.BucketName())
}

func TestEnvBoolBadValue(t *testing.T) {
	t.Setenv("DEBUG", "not-a-bool")
	assert.False(t, envBool("DEBUG", false))
}
