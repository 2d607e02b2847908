package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/splashcamper/splashcamper-api/internal/domain/users"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const currentUserKey = "currentUser"

// SessionClaims are the claims of the session token issued by the OAuth front end
type SessionClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Picture  string `json:"picture,omitempty"`
	Provider string `json:"provider,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies HS256 bearer tokens and loads the matching user
type AuthMiddleware struct {
	secret      []byte
	issuer      string
	userService users.UserService
	logger      logger.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(settings *config.AuthSettings, userService users.UserService, logger logger.Logger) (*AuthMiddleware, error) {
	if settings == nil || settings.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &AuthMiddleware{
		secret:      []byte(settings.JWTSecret),
		issuer:      settings.Issuer,
		userService: userService,
		logger:      logger,
	}, nil
}

// Authenticate resolves the caller when an Authorization header is present.
// Anonymous requests pass through; invalid tokens are rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid authorization header format"})
			return
		}

		claims, err := m.ParseToken(parts[1])
		if err != nil {
			m.logger.Warn("token validation failed", "path", ctx.FullPath(), "error", err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid session token"})
			return
		}

		user, err := m.userService.EnsureUser(ctx, &users.Identity{
			Subject:  claims.Subject,
			Email:    claims.Email,
			Name:     claims.Name,
			Picture:  claims.Picture,
			Provider: claims.Provider,
		})
		if err != nil {
			if errors.Is(err, users.ErrValidation) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "session token has no email"})
				return
			}
			respondError(ctx, m.logger, "failed to load user", err)
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// ParseToken verifies the signature, expiry and issuer of a session token
func (m *AuthMiddleware) ParseToken(token string) (*SessionClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// RequireAuth rejects anonymous requests
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if CurrentUser(ctx) == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		ctx.Next()
	}
}

// RequireAdmin rejects requests not made by an administrator
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		if !user.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "administrator role required"})
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user or nil
func CurrentUser(ctx *gin.Context) *users.User {
	v, ok := ctx.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*users.User)
	return user
}
