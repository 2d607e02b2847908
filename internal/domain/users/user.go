package users

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/pkg/validators"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrValidation wraps field-level validation failures.
	ErrValidation = errors.New("invalid user")
	// ErrDuplicate is returned when the email already belongs to an account.
	ErrDuplicate = errors.New("email already registered")
)

// User entity
type User struct {
	ID                string    `validate:"required,uuid4"`
	Email             string    `validate:"required,email,max=255"`
	Name              string    `validate:"max=255"`
	Image             string    `validate:"omitempty,url,max=1024"`
	Role              string    `validate:"required,oneof=user admin"`
	Provider          string    `validate:"max=50"`
	ProviderAccountID string    `validate:"max=255"`
	DateTimeCreated   time.Time `validate:"required"`
}

// IsAdmin reports whether the user may moderate stations
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lowercases and trims an email so it can be used as a lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate for validating User struct
func (u *User) Validate() error {
	if err := validators.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Identity is what a verified session token tells about the caller
type Identity struct {
	Subject  string
	Email    string
	Name     string
	Picture  string
	Provider string
}
