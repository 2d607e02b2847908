package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BlobConnectorSettings configures the object storage that holds station images
type BlobConnectorSettings struct {
	CloudProvider    string `yaml:"cloud_provider" env:"BLOB_CLOUD_PROVIDER" validate:"required,oneof=azure"`
	ConnectionString string `yaml:"connection_string" env:"BLOB_CONNECTION_STRING" validate:"required"`
	ContainerName    string `yaml:"container_name" env:"BLOB_CONTAINER_NAME" validate:"required,min=3,max=63"`
}

// Validate checks that all fields in BlobConnectorSettings are valid
func (s *BlobConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BlobConnectorSettings: %w", err)
	}
	return nil
}
