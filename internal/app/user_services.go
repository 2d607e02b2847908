package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/google/uuid"
)

// userService implements the UserService interface
type userService struct {
	repo   users.UserRepository
	auth   *config.AuthSettings
	logger logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(repo users.UserRepository, auth *config.AuthSettings, logger logger.Logger) (users.UserService, error) {
	if auth == nil {
		return nil, fmt.Errorf("auth settings are required")
	}
	return &userService{
		repo:   repo,
		auth:   auth,
		logger: logger,
	}, nil
}

// EnsureUser looks the identity up by email and creates the account on first sign-in.
// Profile fields are refreshed from the token and listed admin emails are promoted.
func (s *userService) EnsureUser(ctx context.Context, identity *users.Identity) (*users.User, error) {
	email := users.NormalizeEmail(identity.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: identity has no email", users.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		user = &users.User{
			ID:                uuid.NewString(),
			Email:             email,
			Name:              identity.Name,
			Image:             identity.Picture,
			Role:              users.RoleUser,
			Provider:          identity.Provider,
			ProviderAccountID: identity.Subject,
			DateTimeCreated:   time.Now(),
		}
		if s.auth.IsAdminEmail(email) {
			user.Role = users.RoleAdmin
		}
		err := s.repo.Create(ctx, user)
		if err == nil {
			s.logger.Info("user created", "id", user.ID, "provider", user.Provider, "role", user.Role)
			return user, nil
		}
		if !errors.Is(err, users.ErrDuplicate) {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		// A concurrent first sign-in created the account
		if user, err = s.repo.GetByEmail(ctx, email); err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
	}

	changed := false
	if identity.Name != "" && identity.Name != user.Name {
		user.Name = identity.Name
		changed = true
	}
	if identity.Picture != "" && identity.Picture != user.Image {
		user.Image = identity.Picture
		changed = true
	}
	if !user.IsAdmin() && s.auth.IsAdminEmail(email) {
		user.Role = users.RoleAdmin
		changed = true
	}
	if changed {
		if err := s.repo.UpdateByID(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) PromoteByEmail(ctx context.Context, email string) (*users.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.IsAdmin() {
		return user, nil
	}

	user.Role = users.RoleAdmin
	if err := s.repo.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}

	s.logger.Info("user promoted to admin", "id", user.ID)
	return user, nil
}
