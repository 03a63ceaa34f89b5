// Package memory holds the default in-process backing for the scan-to-pay
// session store. State lives only for the lifetime of the server process and
// is lost on restart — an accepted trade-off, since handoff state is measured
// in the minutes a checkout takes. A multi-instance deployment must use the
// Redis implementation instead.
package memory

import (
	"context"
	"sync"

	"github.com/indocart/pos-payments/internal/core/domain"
)

// SessionStore implements ports.SessionStore over two plain maps. The mutex
// provides per-operation atomicity only; racing writers on the same token
// resolve last-write-wins, which the coordinator relies on.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string             // order_id → token
	statuses map[string]domain.StatusEntry // token → status entry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]string),
		statuses: make(map[string]domain.StatusEntry),
	}
}

func (s *SessionStore) PutSession(_ context.Context, orderID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[orderID] = token
	return nil
}

func (s *SessionStore) GetSession(_ context.Context, orderID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.sessions[orderID]
	return token, ok, nil
}

func (s *SessionStore) DeleteSession(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, orderID)
	return nil
}

func (s *SessionStore) UpsertStatus(_ context.Context, token string, entry domain.StatusEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[token] = entry
	return nil
}

func (s *SessionStore) GetStatus(_ context.Context, token string) (domain.StatusEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.statuses[token]
	return entry, ok, nil
}
