// Package session holds per-visitor ephemeral state keyed by an opaque token.
// Carts live here; nothing in this package touches the relational store.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is a token-keyed blob store. Implementations must be safe for
// concurrent use; two tokens never share state.
type Store interface {
	Get(ctx context.Context, token string) ([]byte, bool, error)
	Set(ctx context.Context, token string, data []byte) error
	Delete(ctx context.Context, token string) error
}

// NewToken returns a fresh visitor token.
func NewToken() string {
	return uuid.NewString()
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps session blobs in process memory with a sliding TTL.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, token string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if e.expired(s.now()) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return nil, false, nil
	}
	return e.data, true, nil
}

// Set stores data for token, refreshing its expiry. A non-positive TTL on
// the store means entries never expire.
func (s *MemoryStore) Set(_ context.Context, token string, data []byte) error {
	e := entry{data: data}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[token] = e
	s.sweepLocked()
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
	return nil
}

// sweepLocked drops expired entries. Called opportunistically on writes so
// abandoned carts do not accumulate forever.
func (s *MemoryStore) sweepLocked() {
	now := s.now()
	for token, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, token)
		}
	}
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}
