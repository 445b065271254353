package mongo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// Runs against a live server only when MONGO_TEST_URI is set.
func newTestStorage(t *testing.T) *TokenStorage {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	client, db, err := Connect(ctx, Config{URI: uri, Database: "storefront_test"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	s := NewTokenStorage(db, time.Minute)
	if err := s.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	return s
}

func TestTokenStorage_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	key := "storefront:token:test-roundtrip"

	if _, err := s.Fetch(ctx, key); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if err := s.Put(ctx, key, "T1"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, key, "T2"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	if tok, err := s.Fetch(ctx, key); err != nil || tok != "T2" {
		t.Fatalf("expected T2, got %q %v", tok, err)
	}
	if ok, _ := s.DeleteIfMatch(ctx, key, "T1"); ok {
		t.Fatalf("stale token must not delete")
	}
	if ok, _ := s.DeleteIfMatch(ctx, key, "T2"); !ok {
		t.Fatalf("matching token must delete")
	}
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
