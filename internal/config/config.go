package config

import (
	"fmt"
	"net/url"
	"strings"

	pkgconfig "github.com/Almaash/community-app-admin/pkg/config"
)

// Config holds all configuration for the admin client.
type Config struct {
	// Backend origin; all endpoint URLs are built from this single value.
	APIOrigin string `env:"API_ORIGIN" envDefault:"http://localhost:3000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// HTTP client
	HTTPTimeoutSeconds int `env:"HTTP_TIMEOUT_SECONDS" envDefault:"30"`

	// Directory for the credential store. Empty means a per-user default
	// under os.UserConfigDir.
	CredentialDir string `env:"CREDENTIAL_DIR"`

	// Google sign-in (identity exchange). The ID token obtained here is
	// exchanged at the backend login endpoint for the app's own bearer token.
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	OAuthRedirectPort  int    `env:"OAUTH_REDIRECT_PORT" envDefault:"8437"`

	// Chat watch polling
	ChatPollIntervalSeconds int `env:"CHAT_POLL_INTERVAL_SECONDS" envDefault:"5"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load admin client config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	u, err := url.Parse(c.APIOrigin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_ORIGIN must be a valid absolute URL, got %q", c.APIOrigin)
	}
	c.APIOrigin = strings.TrimRight(c.APIOrigin, "/")

	if c.HTTPTimeoutSeconds < 1 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive, got %d", c.HTTPTimeoutSeconds)
	}
	if c.OAuthRedirectPort < 1 || c.OAuthRedirectPort > 65535 {
		return fmt.Errorf("invalid OAUTH_REDIRECT_PORT: %d", c.OAuthRedirectPort)
	}
	if c.ChatPollIntervalSeconds < 1 {
		return fmt.Errorf("CHAT_POLL_INTERVAL_SECONDS must be positive, got %d", c.ChatPollIntervalSeconds)
	}
	return nil
}
