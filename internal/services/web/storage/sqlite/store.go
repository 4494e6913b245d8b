package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/adreach/console/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/adreach/console/internal/services/web/storage"
	"github.com/adreach/console/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for web sessions.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ webstorage.SessionStore = (*Store)(nil)

// Open opens and migrates a web session SQLite store.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveSession upserts a session record and prunes expired ones.
func (s *Store) SaveSession(ctx context.Context, session webstorage.Session) error {
	if s == nil || s.sqlDB == nil {
		return webstorage.ErrNotConfigured
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}
	now := s.now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	credentials := session.Credentials
	if credentials == nil {
		credentials = []byte("{}")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE expires_at <= ?`, now.UnixMilli()); err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO web_sessions (id, advertiser_id, display_name, phone, credentials_json, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    advertiser_id = excluded.advertiser_id,
		    display_name = excluded.display_name,
		    phone = excluded.phone,
		    credentials_json = excluded.credentials_json,
		    expires_at = excluded.expires_at`,
		session.ID,
		strings.TrimSpace(session.AdvertiserID),
		strings.TrimSpace(session.DisplayName),
		strings.TrimSpace(session.Phone),
		credentials,
		session.CreatedAt.UTC().UnixMilli(),
		session.ExpiresAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession returns an unexpired session by id.
func (s *Store) LoadSession(ctx context.Context, id string) (webstorage.Session, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Session{}, false, webstorage.ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return webstorage.Session{}, false, nil
	}

	var session webstorage.Session
	var createdAt, expiresAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, advertiser_id, display_name, phone, credentials_json, created_at, expires_at
		 FROM web_sessions
		 WHERE id = ?`,
		id,
	).Scan(&session.ID, &session.AdvertiserID, &session.DisplayName, &session.Phone, &session.Credentials, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return webstorage.Session{}, false, nil
	}
	if err != nil {
		return webstorage.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	session.CreatedAt = time.UnixMilli(createdAt).UTC()
	session.ExpiresAt = time.UnixMilli(expiresAt).UTC()
	if session.Expired(s.now()) {
		return webstorage.Session{}, false, nil
	}
	return session, true, nil
}

// DeleteSession removes a session by id.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if s == nil || s.sqlDB == nil {
		return webstorage.ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
