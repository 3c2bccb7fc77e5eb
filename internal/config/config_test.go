package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvSingularityToken, "")
	t.Setenv(EnvSingularityURL, "")
	t.Setenv(EnvNotionURL, "")
	t.Setenv(EnvNotionVersion, "")

	cfg := FromEnv()

	if cfg.SingularityURL != DefaultSingularityURL {
		t.Errorf("Expected default Singularity URL, got %s", cfg.SingularityURL)
	}
	if cfg.NotionURL != DefaultNotionURL {
		t.Errorf("Expected default Notion URL, got %s", cfg.NotionURL)
	}
	if cfg.NotionVersion != DefaultNotionVersion {
		t.Errorf("Expected default Notion version, got %s", cfg.NotionVersion)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.HTTPTimeout)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvSingularityToken, "token-123")
	t.Setenv(EnvSingularityURL, "http://localhost:8081/v2")
	t.Setenv(EnvNotionVersion, "2023-01-01")

	cfg := FromEnv()

	if cfg.SingularityToken != "token-123" {
		t.Errorf("Expected token from env, got %s", cfg.SingularityToken)
	}
	if cfg.SingularityURL != "http://localhost:8081/v2" {
		t.Errorf("Expected URL from env, got %s", cfg.SingularityURL)
	}
	if cfg.NotionVersion != "2023-01-01" {
		t.Errorf("Expected Notion version from env, got %s", cfg.NotionVersion)
	}
}

func TestRequireSingularity(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireSingularity(); err == nil {
		t.Error("Expected error for missing Singularity token")
	}

	cfg.SingularityToken = "token"
	if err := cfg.RequireSingularity(); err != nil {
		t.Errorf("Unexpected error with token set: %v", err)
	}
}

func TestRequireNotion(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireNotion(); err == nil {
		t.Error("Expected error for missing Notion token")
	}

	cfg.NotionToken = "secret"
	if err := cfg.RequireNotion(); err != nil {
		t.Errorf("Unexpected error with token set: %v", err)
	}
}

func TestRequireGoogle(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireGoogle(); err == nil {
		t.Error("Expected error for missing Google token")
	}

	cfg.GoogleToken = "ya29.token"
	if err := cfg.RequireGoogle(); err != nil {
		t.Errorf("Unexpected error with token set: %v", err)
	}
}
