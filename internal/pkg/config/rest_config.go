package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// RestConfig is the full configuration of the REST API binary
type RestConfig struct {
	Port           string                `yaml:"port" env:"PORT" validate:"required,numeric"`
	AllowedOrigins []string              `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	Database       DatabaseSettings      `yaml:"database"`
	Logger         LoggerSettings        `yaml:"logger"`
	BlobConnector  BlobConnectorSettings `yaml:"blob_connector"`
	Auth           AuthSettings          `yaml:"auth"`
	RateLimit      RateLimitSettings     `yaml:"rate_limit"`
	Legacy         LegacySettings        `yaml:"legacy"`
}

// Validate checks every settings block of the RestConfig
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.BlobConnector.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg := &RestConfig{}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
