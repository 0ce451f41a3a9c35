package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	GoogleClientID  string        `env:"VITE_GOOGLE_OAUTH2_CLIENT_ID,required,notEmpty"`
	OAuthLoginURL   string        `env:"VITE_OAUTH_LOGIN_URL,required,notEmpty"`
	BackendHost     string        `env:"BACKEND_HOST,required,notEmpty"`
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:":3000"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
	JournalPath     string        `env:"JOURNAL_PATH" envDefault:"journal.db"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.GoogleClientID) == "" {
		errs = append(errs, errors.New("VITE_GOOGLE_OAUTH2_CLIENT_ID is required"))
	}
	if err := validateURL("VITE_OAUTH_LOGIN_URL", c.OAuthLoginURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("BACKEND_HOST", c.BackendHost); err != nil {
		errs = append(errs, err)
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", c.UpstreamTimeout))
	}
	if c.JournalPath == "" {
		errs = append(errs, errors.New("JOURNAL_PATH must not be empty"))
	}

	c.AllowedOrigins = trimCSV(c.AllowedOrigins)

	return errors.Join(errs...)
}

// BackendURL returns the parsed backend base URL. Validate must have passed.
func (c *Config) BackendURL() *url.URL {
	u, _ := url.Parse(strings.TrimRight(c.BackendHost, "/"))
	return u
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", name, raw)
	}
	return nil
}

func trimCSV(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
