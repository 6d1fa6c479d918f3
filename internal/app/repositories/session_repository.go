package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/pkg/logger"
	"github.com/alawael/platform/internal/storage"
)

// SessionRepository persists the one live session record per user.
type SessionRepository struct {
	store storage.Store
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get returns the user's stored session, or nil if absent. A corrupted
// stored session is cleared silently and reported as absent, so hydration
// falls back to the anonymous state instead of failing.
func (r *SessionRepository) Get(ctx context.Context, userID string) (*models.Session, error) {
	key := storage.SessionKey(userID)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Corrupted stored session, clearing")
		if delErr := r.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("failed to clear corrupted session: %w", delErr)
		}
		return nil, nil
	}
	return &session, nil
}

// Save replaces the user's session record.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, storage.SessionKey(session.User.ID), data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Delete removes the user's session record.
func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, storage.SessionKey(userID))
}
