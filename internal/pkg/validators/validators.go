package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the custom station rules registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation("frpostalcode", PostalCodeValidation); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}
	return validate, nil
}

// Struct validates s and flattens validator errors into a single readable error.
func Struct(s interface{}) error {
	validate, err := New()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
