package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	webstorage "github.com/adreach/console/internal/services/web/storage"
)

func TestStoreRoundTripAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := New()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return now }

	record := webstorage.Session{
		ID:           "ws-1",
		AdvertiserID: "adv-1",
		Credentials:  []byte(`{"cookies":[{"name":"token","value":"abc"}]}`),
		ExpiresAt:    now.Add(time.Hour),
	}
	if err := store.SaveSession(ctx, record); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}
	got, ok, err := store.LoadSession(ctx, "ws-1")
	if err != nil || !ok {
		t.Fatalf("LoadSession() = %v, %v", ok, err)
	}
	if got.AdvertiserID != "adv-1" || string(got.Credentials) != string(record.Credentials) {
		t.Fatalf("record = %+v", got)
	}

	if err := store.DeleteSession(ctx, "ws-1"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if _, ok, _ := store.LoadSession(ctx, "ws-1"); ok {
		t.Fatal("expected record to be deleted")
	}
}

func TestStoreHidesExpiredRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := New()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return now }

	if err := store.SaveSession(ctx, webstorage.Session{ID: "ws-1", ExpiresAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, ok, _ := store.LoadSession(ctx, "ws-1"); ok {
		t.Fatal("expected expired record to be hidden")
	}
}

func TestStoreRejectsEmptyIDAndClosedUse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := New()
	if err := store.SaveSession(ctx, webstorage.Session{}); err == nil {
		t.Fatal("expected empty id error")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := store.SaveSession(ctx, webstorage.Session{ID: "ws-1"}); !errors.Is(err, webstorage.ErrNotConfigured) {
		t.Fatalf("SaveSession() after close error = %v", err)
	}
}
