package users

import "context"

// UserService defines methods for resolving the caller of a request.
type UserService interface {
	// EnsureUser returns the user for a verified identity, creating it on first sign-in.
	EnsureUser(ctx context.Context, identity *Identity) (*User, error)

	// GetByID returns a user by id.
	GetByID(ctx context.Context, userID string) (*User, error)

	// PromoteByEmail grants the admin role to an existing user.
	PromoteByEmail(ctx context.Context, email string) (*User, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
}
