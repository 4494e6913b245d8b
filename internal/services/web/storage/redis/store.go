// Package redis provides a shared session store for multi-instance deployments.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	webstorage "github.com/adreach/console/internal/services/web/storage"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "adreach:web:session:"

// Connect initializes a Redis client from URL or host:port input.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	redisURL = strings.TrimSpace(redisURL)
	if redisURL == "" {
		return nil, fmt.Errorf("redis url is required")
	}
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Store keeps session records as JSON values that expire with the session.
type Store struct {
	client redis.UniversalClient
	now    func() time.Time
}

var _ webstorage.SessionStore = (*Store)(nil)

// New wraps an existing Redis client.
func New(client redis.UniversalClient) *Store {
	return &Store{client: client, now: time.Now}
}

type record struct {
	ID           string          `json:"id"`
	AdvertiserID string          `json:"advertiser_id"`
	DisplayName  string          `json:"display_name"`
	Phone        string          `json:"phone"`
	Credentials  json.RawMessage `json:"credentials"`
	CreatedAt    time.Time       `json:"created_at"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

// SaveSession stores the session with a TTL matching its expiry.
func (s *Store) SaveSession(ctx context.Context, session webstorage.Session) error {
	if s == nil || s.client == nil {
		return webstorage.ErrNotConfigured
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("session expiry must be in the future")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now().UTC()
	}
	credentials := json.RawMessage(session.Credentials)
	if len(credentials) == 0 {
		credentials = json.RawMessage("{}")
	}
	payload, err := json.Marshal(record{
		ID:           session.ID,
		AdvertiserID: session.AdvertiserID,
		DisplayName:  session.DisplayName,
		Phone:        session.Phone,
		Credentials:  credentials,
		CreatedAt:    session.CreatedAt.UTC(),
		ExpiresAt:    session.ExpiresAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+session.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession returns a live session by id.
func (s *Store) LoadSession(ctx context.Context, id string) (webstorage.Session, bool, error) {
	if s == nil || s.client == nil {
		return webstorage.Session{}, false, webstorage.ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return webstorage.Session{}, false, nil
	}
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return webstorage.Session{}, false, nil
	}
	if err != nil {
		return webstorage.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	var rec record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return webstorage.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	session := webstorage.Session{
		ID:           rec.ID,
		AdvertiserID: rec.AdvertiserID,
		DisplayName:  rec.DisplayName,
		Phone:        rec.Phone,
		Credentials:  []byte(rec.Credentials),
		CreatedAt:    rec.CreatedAt,
		ExpiresAt:    rec.ExpiresAt,
	}
	if session.Expired(s.now()) {
		return webstorage.Session{}, false, nil
	}
	return session, true, nil
}

// DeleteSession removes a session by id.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if s == nil || s.client == nil {
		return webstorage.ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
