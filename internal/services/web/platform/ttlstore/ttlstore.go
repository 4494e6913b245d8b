// Package ttlstore provides small in-memory keyed stores whose entries expire.
//
// Pending OTP logins and campaign wizard drafts live here: both are scoped to
// one browser, short lived and safe to lose on restart.
package ttlstore

import (
	"strings"
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Store is a thread-safe map whose entries expire after a fixed TTL.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

// New creates an empty store with the given entry lifetime.
func New[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// TTL returns the entry lifetime.
func (s *Store[T]) TTL() time.Duration {
	return s.ttl
}

// Put stores value under key and restarts its lifetime. Expired entries are
// pruned on every write.
func (s *Store[T]) Put(key string, value T) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.pruneLocked(now)
	s.entries[key] = entry[T]{value: value, expiresAt: now.Add(s.ttl)}
}

// Get returns the live value stored under key.
func (s *Store[T]) Get(key string) (T, bool) {
	var zero T
	key = strings.TrimSpace(key)
	if key == "" {
		return zero, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.entries[key]
	if !ok {
		return zero, false
	}
	if !s.now().Before(current.expiresAt) {
		delete(s.entries, key)
		return zero, false
	}
	return current.value, true
}

// Delete removes key.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, strings.TrimSpace(key))
	s.mu.Unlock()
}

// Len returns the number of stored entries, live or not yet pruned.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store[T]) pruneLocked(now time.Time) {
	for key, current := range s.entries {
		if !now.Before(current.expiresAt) {
			delete(s.entries, key)
		}
	}
}
