package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RateLimitSettings bounds how often a single client may submit stations, reviews or images
type RateLimitSettings struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"RATE_LIMIT_RPS" validate:"gt=0"`
	Burst             int     `yaml:"burst" env:"RATE_LIMIT_BURST" validate:"min=1"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	return nil
}
