package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds the values shared with the OAuth front end that signs session tokens.
type AuthSettings struct {
	JWTSecret   string   `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required,min=32"`
	Issuer      string   `yaml:"issuer" env:"AUTH_ISSUER"`
	AdminEmails []string `yaml:"admin_emails" env:"AUTH_ADMIN_EMAILS"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}

// IsAdminEmail reports whether email is listed as an administrator.
func (s *AuthSettings) IsAdminEmail(email string) bool {
	for _, admin := range s.AdminEmails {
		if strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}
	return false
}
