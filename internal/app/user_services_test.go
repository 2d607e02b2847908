//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T, repo *MockUserRepository) users.UserService {
	t.Helper()
	auth := &config.AuthSettings{
		JWTSecret:   "0123456789abcdef0123456789abcdef",
		AdminEmails: []string{"Admin@SplashCamper.fr"},
	}
	svc, err := NewUserService(repo, auth, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc
}

func TestUserService_EnsureUser_CreatesOnFirstSignIn(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := newTestUserService(t, repo)

	repo.On("GetByEmail", ctx, "camille@example.fr").Return(nil, users.ErrNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*users.User")).Return(nil)

	user, err := svc.EnsureUser(ctx, &users.Identity{
		Subject:  "google-123",
		Email:    " Camille@Example.fr",
		Name:     "Camille",
		Provider: "google",
	})
	require.NoError(t, err)
	assert.Equal(t, "camille@example.fr", user.Email)
	assert.Equal(t, users.RoleUser, user.Role)
	assert.Equal(t, "google-123", user.ProviderAccountID)
	repo.AssertExpectations(t)
}

func TestUserService_EnsureUser_AdminEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := newTestUserService(t, repo)

	repo.On("GetByEmail", ctx, "admin@splashcamper.fr").Return(nil, users.ErrNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*users.User")).Return(nil)

	user, err := svc.EnsureUser(ctx, &users.Identity{Email: "admin@splashcamper.fr"})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestUserService_EnsureUser_ConcurrentFirstSignIn(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := newTestUserService(t, repo)

	winner := &users.User{
		ID:              uuid.NewString(),
		Email:           "camille@example.fr",
		Name:            "Camille",
		Role:            users.RoleUser,
		DateTimeCreated: time.Now(),
	}
	repo.On("GetByEmail", ctx, "camille@example.fr").Return(nil, users.ErrNotFound).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*users.User")).Return(users.ErrDuplicate)
	repo.On("GetByEmail", ctx, "camille@example.fr").Return(winner, nil).Once()

	user, err := svc.EnsureUser(ctx, &users.Identity{Email: "camille@example.fr", Name: "Camille"})
	require.NoError(t, err)
	assert.Equal(t, winner.ID, user.ID)
	repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestUserService_EnsureUser_CreateFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := newTestUserService(t, repo)

	repo.On("GetByEmail", ctx, "camille@example.fr").Return(nil, users.ErrNotFound).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*users.User")).Return(errors.New("connection reset"))

	_, err := svc.EnsureUser(ctx, &users.Identity{Email: "camille@example.fr"})
	assert.Error(t, err)
	repo.AssertNumberOfCalls(t, "GetByEmail", 1)
}

func TestUserService_EnsureUser_ExistingUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := newTestUserService(t, repo)

	existing := &users.User{
		ID:              uuid.NewString(),
		Email:           "camille@example.fr",
		Name:            "Camille",
		Role:            users.RoleUser,
		DateTimeCreated: time.Now(),
	}
	repo.On("GetByEmail", ctx, "camille@example.fr").Return(existing, nil)

	user, err := svc.EnsureUser(ctx, &users.Identity{Email: "camille@example.fr", Name: "Camille"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
	repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
}

func TestUserService_EnsureUser_RefreshesProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := newTestUserService(t, repo)

	existing := &users.User{ID: uuid.NewString(), Email: "camille@example.fr", Name: "Cam", Role: users.RoleUser}
	repo.On("GetByEmail", ctx, "camille@example.fr").Return(existing, nil)
	repo.On("UpdateByID", ctx, existing).Return(nil)

	user, err := svc.EnsureUser(ctx, &users.Identity{Email: "camille@example.fr", Name: "Camille", Picture: "https://example.fr/c.png"})
	require.NoError(t, err)
	assert.Equal(t, "Camille", user.Name)
	assert.Equal(t, "https://example.fr/c.png", user.Image)
	repo.AssertExpectations(t)
}

func TestUserService_EnsureUser_NoEmail(t *testing.T) {
	svc := newTestUserService(t, new(MockUserRepository))

	_, err := svc.EnsureUser(context.Background(), &users.Identity{Subject: "x"})
	assert.ErrorIs(t, err, users.ErrValidation)
}

func TestUserService_PromoteByEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := newTestUserService(t, repo)

	existing := &users.User{ID: uuid.NewString(), Email: "camille@example.fr", Role: users.RoleUser}
	repo.On("GetByEmail", ctx, "camille@example.fr").Return(existing, nil)
	repo.On("UpdateByID", ctx, existing).Return(nil)

	user, err := svc.PromoteByEmail(ctx, "camille@example.fr")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	repo2 := new(MockUserRepository)
	svc2 := newTestUserService(t, repo2)
	repo2.On("GetByEmail", ctx, "nobody@example.fr").Return(nil, users.ErrNotFound)
	_, err = svc2.PromoteByEmail(ctx, "nobody@example.fr")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestNewUserService_RequiresSettings(t *testing.T) {
	_, err := NewUserService(new(MockUserRepository), nil, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
