// Package session provides storage backends for admin session tokens.
package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps session tokens in process memory. Expiry is checked
// lazily at lookup time; there is no background sweep. Sessions do not
// survive a restart, which simply forces a re-login.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = expiresAt
	return nil
}

func (s *MemoryStore) Valid(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiresAt, ok := s.sessions[token]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expiresAt) {
		delete(s.sessions, token)
		return false, nil
	}
	return true, nil
}

// Revoke removes the token. Revoking an unknown token is not an error.
func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
