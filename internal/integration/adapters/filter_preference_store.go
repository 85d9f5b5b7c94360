// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
)

// filterPreferenceStore implements adapter.FilterPreferenceStore on Redis.
// Keys have no TTL: the preference persists until the user changes it.
type filterPreferenceStore struct {
	client *redis.Client
}

// NewFilterPreferenceStore creates a new Redis-backed filter preference store.
func NewFilterPreferenceStore(client *redis.Client) adapter.FilterPreferenceStore {
	return &filterPreferenceStore{
		client: client,
	}
}

func filterKey(userID uuid.UUID) string {
	return "board:filter:" + userID.String()
}

// Get returns the user's last selected filter, or FilterNone when unset.
func (s *filterPreferenceStore) Get(ctx context.Context, userID uuid.UUID) (entity.Filter, error) {
	value, err := s.client.Get(ctx, filterKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.FilterNone, nil
		}
		return entity.FilterNone, fmt.Errorf("failed to read filter preference: %w", err)
	}

	filter := entity.Filter(value)
	if !filter.IsValid() {
		// A corrupt value behaves like no preference at all
		return entity.FilterNone, nil
	}
	return filter, nil
}

// Set stores the user's last selected filter.
func (s *filterPreferenceStore) Set(ctx context.Context, userID uuid.UUID, filter entity.Filter) error {
	if err := s.client.Set(ctx, filterKey(userID), string(filter), 0).Err(); err != nil {
		return fmt.Errorf("failed to store filter preference: %w", err)
	}
	return nil
}
