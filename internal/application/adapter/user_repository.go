// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindDigestRecipients returns all users opted in to the weekly digest.
	FindDigestRecipients(ctx context.Context) ([]*entity.User, error)
}
