// Package memory provides a process-local session store for development and tests.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	webstorage "github.com/adreach/console/internal/services/web/storage"
)

// Store keeps session records in a mutex-guarded map.
type Store struct {
	mu       sync.Mutex
	sessions map[string]webstorage.Session
	closed   bool
	now      func() time.Time
}

var _ webstorage.SessionStore = (*Store)(nil)

var errEmptyID = errors.New("session id is required")

// New returns an empty store.
func New() *Store {
	return &Store{sessions: make(map[string]webstorage.Session), now: time.Now}
}

// SaveSession inserts or replaces a record and prunes expired ones.
func (s *Store) SaveSession(_ context.Context, session webstorage.Session) error {
	id := strings.TrimSpace(session.ID)
	if id == "" {
		return errEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return webstorage.ErrNotConfigured
	}
	now := s.now()
	for key, existing := range s.sessions {
		if existing.Expired(now) {
			delete(s.sessions, key)
		}
	}
	session.ID = id
	session.Credentials = append([]byte(nil), session.Credentials...)
	s.sessions[id] = session
	return nil
}

// LoadSession returns a live record.
func (s *Store) LoadSession(_ context.Context, id string) (webstorage.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return webstorage.Session{}, false, webstorage.ErrNotConfigured
	}
	session, ok := s.sessions[strings.TrimSpace(id)]
	if !ok || session.Expired(s.now()) {
		return webstorage.Session{}, false, nil
	}
	session.Credentials = append([]byte(nil), session.Credentials...)
	return session, true, nil
}

// DeleteSession removes a record. Missing ids are not an error.
func (s *Store) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return webstorage.ErrNotConfigured
	}
	delete(s.sessions, strings.TrimSpace(id))
	return nil
}

// Close drops all records.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.sessions = nil
	return nil
}
