package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection parameters for the relational store.
// Name is optional for postgres; when set the database is created if missing.
type DatabaseSettings struct {
	Type string `yaml:"type" env:"DATABASE_TYPE" validate:"required,oneof=postgres sqlite"`
	DSN  string `yaml:"dsn" env:"DATABASE_DSN" validate:"required"`
	Name string `yaml:"name" env:"DATABASE_NAME"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
