package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// StoreSource adapts a [Store] to the engine's role-source contract: a
// missing or role-less session yields an empty role with a nil error, so
// the polling loop treats it as "not yet" rather than a failure. Only
// transport errors propagate.
type StoreSource struct {
	store *Store
}

// NewStoreSource wraps a session store.
func NewStoreSource(store *Store) *StoreSource {
	return &StoreSource{store: store}
}

// ReadRole reads the current role for the given session.
func (s *StoreSource) ReadRole(ctx context.Context, tenantID, sessionID string) (string, error) {
	if s == nil || s.store == nil {
		return "", ErrRedisUnavailable
	}

	sess, err := s.store.GetReadOnly(ctx, tenantID, sessionID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}

	return sess.Role, nil
}
