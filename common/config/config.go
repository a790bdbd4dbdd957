package config

import (
	"os"
	"strconv"
)

// Config holds everything the service reads from the environment. It is
// loaded once in main and handed to constructors; nothing else reads env vars.
type Config struct {
	// ProjectID is the Google Cloud project. Every AI or storage call
	// requires it; when empty the endpoints answer 500 without calling out.
	ProjectID string
	// Location is the Vertex AI / Dialogflow / bucket region.
	Location string
	// AgentID is the Dialogflow CX agent. Optional: when empty the chat
	// consultant degrades to a fixed reply.
	AgentID string
	// GeminiAPIKey authenticates the vision description call.
	GeminiAPIKey string

	Port         string
	DebugEnabled bool
}

const defaultLocation = "us-central1"

func Load() *Config {
	return &Config{
		ProjectID:    os.Getenv("GOOGLE_CLOUD_PROJECT"),
		Location:     envString("GOOGLE_CLOUD_LOCATION", defaultLocation),
		AgentID:      os.Getenv("DIALOGFLOW_AGENT_ID"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Port:         envString("PORT", "8080"),
		DebugEnabled: envBool("DEBUG", false),
	}
}

// BucketName derives the bucket that holds generated images.
func (c *Config) BucketName() string {
	return c.ProjectID + "-generated-images"
}

func envString(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}
