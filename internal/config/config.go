package config

import (
	"fmt"
	"os"
	"time"
)

// Environment variable names used to configure the server.
const (
	EnvSingularityToken = "SINGULARITY_API_TOKEN"
	EnvSingularityURL   = "SINGULARITY_API_URL"
	EnvNotionToken      = "NOTION_API_TOKEN"
	EnvNotionURL        = "NOTION_API_URL"
	EnvNotionVersion    = "NOTION_VERSION"
	EnvGoogleToken      = "GOOGLE_ACCESS_TOKEN"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultSingularityURL = "https://api.singularity-app.com/v2"
	DefaultNotionURL      = "https://api.notion.com"
	DefaultNotionVersion  = "2022-06-28"
	DefaultHTTPTimeout    = 30 * time.Second
)

// Config holds all external service configuration for the application.
// It is constructed once at startup and passed by reference to the
// components that need a token or base URL, instead of components
// reading the environment ad hoc.
type Config struct {
	// SingularityToken is the bearer token for the SingularityApp API.
	SingularityToken string

	// SingularityURL is the base URL of the SingularityApp API.
	SingularityURL string

	// NotionToken is the bearer token for the Notion API.
	NotionToken string

	// NotionURL is the base URL of the Notion API.
	NotionURL string

	// NotionVersion is the value sent in the Notion-Version header.
	NotionVersion string

	// GoogleToken is a static OAuth access token for Google Calendar.
	GoogleToken string

	// HTTPTimeout is the per-request timeout for outbound HTTP calls.
	HTTPTimeout time.Duration
}

// FromEnv builds a Config from the process environment, applying
// defaults for everything except tokens. Token presence is validated
// lazily by RequireSingularity/RequireNotion/RequireGoogle so that a
// server can start with only the services the user has configured.
func FromEnv() *Config {
	cfg := &Config{
		SingularityToken: os.Getenv(EnvSingularityToken),
		SingularityURL:   os.Getenv(EnvSingularityURL),
		NotionToken:      os.Getenv(EnvNotionToken),
		NotionURL:        os.Getenv(EnvNotionURL),
		NotionVersion:    os.Getenv(EnvNotionVersion),
		GoogleToken:      os.Getenv(EnvGoogleToken),
		HTTPTimeout:      DefaultHTTPTimeout,
	}

	if cfg.SingularityURL == "" {
		cfg.SingularityURL = DefaultSingularityURL
	}
	if cfg.NotionURL == "" {
		cfg.NotionURL = DefaultNotionURL
	}
	if cfg.NotionVersion == "" {
		cfg.NotionVersion = DefaultNotionVersion
	}

	return cfg
}

// RequireSingularity returns an error if no SingularityApp token is configured.
func (c *Config) RequireSingularity() error {
	if c.SingularityToken == "" {
		return fmt.Errorf("%s environment variable is required. Get your token at https://me.singularity-app.com", EnvSingularityToken)
	}
	return nil
}

// RequireNotion returns an error if no Notion token is configured.
func (c *Config) RequireNotion() error {
	if c.NotionToken == "" {
		return fmt.Errorf("%s environment variable is required", EnvNotionToken)
	}
	return nil
}

// RequireGoogle returns an error if no Google access token is configured.
func (c *Config) RequireGoogle() error {
	if c.GoogleToken == "" {
		return fmt.Errorf("%s environment variable is required", EnvGoogleToken)
	}
	return nil
}
