package ttlstore

import (
	"testing"
	"time"
)

func TestStoreExpiresEntries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := New[string](time.Minute)
	store.now = func() time.Time { return now }

	store.Put("a", "first")
	if got, ok := store.Get("a"); !ok || got != "first" {
		t.Fatalf("Get(a) = %q, %v", got, ok)
	}

	now = now.Add(time.Minute)
	if _, ok := store.Get("a"); ok {
		t.Fatal("expected entry to expire at its deadline")
	}
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after expired read", store.Len())
	}
}

func TestStorePutPrunesAndRestartsLifetime(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := New[int](time.Minute)
	store.now = func() time.Time { return now }

	store.Put("old", 1)
	store.Put("kept", 2)
	now = now.Add(50 * time.Second)
	store.Put("kept", 3)
	now = now.Add(20 * time.Second)
	store.Put("new", 4)

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	if got, ok := store.Get("kept"); !ok || got != 3 {
		t.Fatalf("Get(kept) = %d, %v", got, ok)
	}
}

func TestStoreIgnoresBlankKeys(t *testing.T) {
	t.Parallel()

	store := New[string](time.Minute)
	store.Put("  ", "value")
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", store.Len())
	}
	if _, ok := store.Get(""); ok {
		t.Fatal("expected blank key miss")
	}
	store.Put(" k ", "v")
	if got, ok := store.Get("k"); !ok || got != "v" {
		t.Fatalf("Get(k) = %q, %v", got, ok)
	}
	store.Delete("k")
	if _, ok := store.Get("k"); ok {
		t.Fatal("expected deleted key miss")
	}
}
