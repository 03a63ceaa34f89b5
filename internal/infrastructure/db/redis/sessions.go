package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/indocart/pos-payments/internal/core/domain"
)

const (
	sessionPrefix = "qr:session:"
	statusPrefix  = "qr:status:"

	// Handoff state lives for the duration of a checkout; anything older is
	// abandoned and safe to expire.
	handoffTTL = 30 * time.Minute
)

// SessionStore is the Redis-backed implementation of ports.SessionStore, for
// deployments running more than one instance. Single SET/GET/DEL commands
// give the same per-operation atomicity and last-write-wins semantics as the
// in-process store.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) PutSession(ctx context.Context, orderID, token string) error {
	if err := s.client.Set(ctx, sessionPrefix+orderID, token, handoffTTL).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

func (s *SessionStore) GetSession(ctx context.Context, orderID string) (string, bool, error) {
	token, err := s.client.Get(ctx, sessionPrefix+orderID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session get: %w", err)
	}
	return token, true, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, orderID string) error {
	if err := s.client.Del(ctx, sessionPrefix+orderID).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) UpsertStatus(ctx context.Context, token string, entry domain.StatusEntry) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("status marshal: %w", err)
	}
	if err := s.client.Set(ctx, statusPrefix+token, b, handoffTTL).Err(); err != nil {
		return fmt.Errorf("status upsert: %w", err)
	}
	return nil
}

func (s *SessionStore) GetStatus(ctx context.Context, token string) (domain.StatusEntry, bool, error) {
	b, err := s.client.Get(ctx, statusPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.StatusEntry{}, false, nil
	}
	if err != nil {
		return domain.StatusEntry{}, false, fmt.Errorf("status get: %w", err)
	}

	var entry domain.StatusEntry
	if err := json.Unmarshal(b, &entry); err != nil {
		return domain.StatusEntry{}, false, fmt.Errorf("status unmarshal: %w", err)
	}
	return entry, true, nil
}
