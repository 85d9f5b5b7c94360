// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is an access/refresh token pair issued at login, registration
// or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims are the claims carried by a validated token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and validates JWT token pairs. Refresh tokens are
// tracked server-side so they can be revoked.
type TokenService interface {
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
	InvalidateRefreshToken(ctx context.Context, token string) error

	// IsRefreshTokenValid reports whether a refresh token is known and not revoked.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}
