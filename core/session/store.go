// Package session keeps authenticated users keyed by an opaque token.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkm-kampus/portal/core/user"
)

// Store maps session tokens to users.
type Store interface {
	// Get returns the user of a live session.
	Get(ctx context.Context, token string) (user.User, bool)
	// Create starts a session for usr and returns its token.
	Create(ctx context.Context, usr user.User) (string, error)
	// Destroy ends a session. Unknown tokens are ignored.
	Destroy(ctx context.Context, token string) error
}

type entry struct {
	usr       user.User
	expiresAt time.Time
}

// MemoryStore is a Store held in process memory. Sessions expire after ttl.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
	nowFunc  func() time.Time // mockable
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		ttl:      ttl,
		nowFunc:  time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, token string) (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[token]
	if !ok || s.expired(e) {
		return user.User{}, false
	}
	return e.usr, true
}

func (s *MemoryStore) Create(_ context.Context, usr user.User) (string, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token.String()] = entry{
		usr:       usr.Public(),
		expiresAt: s.nowFunc().Add(s.ttl),
	}
	return token.String(), nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Sweep removes expired sessions and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for token, e := range s.sessions {
		if s.expired(e) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

// Len returns the number of stored sessions, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) expired(e entry) bool {
	return s.ttl > 0 && !s.nowFunc().Before(e.expiresAt)
}

// SetNowFunc replaces the clock used for expiry.
func (s *MemoryStore) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFunc = now
}
