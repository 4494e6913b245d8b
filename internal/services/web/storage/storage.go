// Package storage defines persistence contracts owned by the web service.
//
// The only persisted state is the browser session record; everything else is
// fetched from the advertiser API on each request.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured is returned by nil or closed stores.
var ErrNotConfigured = errors.New("session storage is not configured")

// Session is one signed-in browser.
type Session struct {
	ID           string
	AdvertiserID string
	DisplayName  string
	Phone        string
	// Credentials holds the JSON-encoded upstream cookies.
	Credentials []byte
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Expired reports whether the record is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionStore persists session records.
type SessionStore interface {
	SaveSession(ctx context.Context, session Session) error
	LoadSession(ctx context.Context, id string) (Session, bool, error)
	DeleteSession(ctx context.Context, id string) error
	Close() error
}
