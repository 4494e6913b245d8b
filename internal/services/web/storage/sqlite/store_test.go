package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	webstorage "github.com/adreach/console/internal/services/web/storage"
	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "web-sessions.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(" "); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	_, path := openTestStore(t)

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	var name string
	if err := sqlDB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = 'web_sessions'").Scan(&name); err != nil {
		t.Fatalf("expected web_sessions table: %v", err)
	}
}

func TestSessionPersistenceRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return now }

	want := webstorage.Session{
		ID:           "sess-1",
		AdvertiserID: "adv-1",
		DisplayName:  "Asha",
		Phone:        "9876543210",
		Credentials:  []byte(`{"cookies":[{"name":"token","value":"abc"}]}`),
		CreatedAt:    now,
		ExpiresAt:    now.Add(7 * 24 * time.Hour),
	}
	if err := store.SaveSession(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.LoadSession(ctx, "sess-1")
	if err != nil || !ok {
		t.Fatalf("load = %v, %v", ok, err)
	}
	if got.AdvertiserID != want.AdvertiserID || got.DisplayName != want.DisplayName || got.Phone != want.Phone {
		t.Fatalf("loaded session = %+v", got)
	}
	if string(got.Credentials) != string(want.Credentials) {
		t.Fatalf("credentials = %s", got.Credentials)
	}
	if !got.ExpiresAt.Equal(want.ExpiresAt) {
		t.Fatalf("expires = %v, want %v", got.ExpiresAt, want.ExpiresAt)
	}

	want.Credentials = []byte(`{"cookies":[{"name":"token","value":"rotated"}]}`)
	if err := store.SaveSession(ctx, want); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _, _ = store.LoadSession(ctx, "sess-1")
	if string(got.Credentials) != string(want.Credentials) {
		t.Fatalf("updated credentials = %s", got.Credentials)
	}

	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, err := store.LoadSession(ctx, "sess-1"); err != nil || ok {
		t.Fatalf("load after delete = %v, %v", ok, err)
	}
}

func TestLoadSessionHidesExpiredAndSavePrunes(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return now }

	if err := store.SaveSession(ctx, webstorage.Session{ID: "old", ExpiresAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("save old: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, ok, err := store.LoadSession(ctx, "old"); err != nil || ok {
		t.Fatalf("expired session load = %v, %v", ok, err)
	}

	if err := store.SaveSession(ctx, webstorage.Session{ID: "new", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("save new: %v", err)
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()
	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM web_sessions").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows = %d, want expired row pruned", count)
	}
}

func TestSaveSessionValidatesInput(t *testing.T) {
	store, _ := openTestStore(t)

	if err := store.SaveSession(context.Background(), webstorage.Session{ExpiresAt: time.Now().Add(time.Hour)}); err == nil {
		t.Fatal("expected missing id error")
	}
	if err := store.SaveSession(context.Background(), webstorage.Session{ID: "x"}); err == nil {
		t.Fatal("expected missing expiry error")
	}

	var nilStore *Store
	if _, _, err := nilStore.LoadSession(context.Background(), "x"); err == nil {
		t.Fatal("expected nil store error")
	}
}
