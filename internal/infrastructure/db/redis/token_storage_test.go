package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// Runs against a live server only when REDIS_TEST_ADDR is set.
func newTestStorage(t *testing.T) *TokenStorage {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client, err := Connect(context.Background(), Config{Addr: addr, DB: 15})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenStorage(client, time.Minute)
}

func TestTokenStorage_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	key := "storefront:token:test-roundtrip"
	t.Cleanup(func() { _ = s.Delete(ctx, key) })

	if _, err := s.Fetch(ctx, key); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if err := s.Put(ctx, key, "T1"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if tok, err := s.Fetch(ctx, key); err != nil || tok != "T1" {
		t.Fatalf("expected T1, got %q %v", tok, err)
	}

	ok, err := s.DeleteIfMatch(ctx, key, "T0")
	if err != nil || ok {
		t.Fatalf("mismatched token must not delete, got %v %v", ok, err)
	}
	ok, err = s.DeleteIfMatch(ctx, key, "T1")
	if err != nil || !ok {
		t.Fatalf("matching token must delete, got %v %v", ok, err)
	}
	if _, err := s.Fetch(ctx, key); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken after delete, got %v", err)
	}
}
