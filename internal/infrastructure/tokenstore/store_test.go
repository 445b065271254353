package tokenstore

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tooswasher/storefront/internal/core/domain"
)

func TestStorageKey(t *testing.T) {
	a, b := StorageKey("sid-a"), StorageKey("sid-b")
	if a == b {
		t.Fatalf("distinct sessions must map to distinct keys")
	}
	if !strings.HasPrefix(a, keyPrefix) || strings.Contains(a, "sid-a") {
		t.Fatalf("unexpected key %q", a)
	}
	if a != StorageKey("sid-a") {
		t.Fatalf("key must be stable")
	}
}

func TestStore_SaveGetClear(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStorage(0), "sid")

	if _, ok, err := s.Get(ctx); ok || err != nil {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}
	if s.IsAuthenticated(ctx) {
		t.Fatalf("empty store must not be authenticated")
	}

	if err := s.Save(ctx, "T1"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if tok, ok, _ := s.Get(ctx); !ok || tok != "T1" {
		t.Fatalf("expected T1, got %q %v", tok, ok)
	}
	if err := s.Save(ctx, "T2"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if tok, _, _ := s.Get(ctx); tok != "T2" {
		t.Fatalf("Save must overwrite, got %q", tok)
	}
	if !s.IsAuthenticated(ctx) {
		t.Fatalf("expected authenticated")
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.IsAuthenticated(ctx) {
		t.Fatalf("expected token cleared")
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clearing an empty store must succeed: %v", err)
	}
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage(0)
	a, b := New(storage, "a"), New(storage, "b")

	_ = a.Save(ctx, "TA")
	if b.IsAuthenticated(ctx) {
		t.Fatalf("session b must not see session a's token")
	}
	_ = b.Save(ctx, "TB")
	_ = a.Clear(ctx)
	if tok, ok, _ := b.Get(ctx); !ok || tok != "TB" {
		t.Fatalf("clearing a must not touch b, got %q %v", tok, ok)
	}
}

func TestStore_ClearIfMatch(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStorage(0), "sid")

	_ = s.Save(ctx, "T_new")
	if err := s.ClearIfMatch(ctx, "T_old"); err != nil {
		t.Fatalf("ClearIfMatch: %v", err)
	}
	if tok, ok, _ := s.Get(ctx); !ok || tok != "T_new" {
		t.Fatalf("a different token must survive, got %q %v", tok, ok)
	}
	_ = s.ClearIfMatch(ctx, "T_new")
	if s.IsAuthenticated(ctx) {
		t.Fatalf("matching token must be cleared")
	}
}

// Any sequence of logins and logouts ends with the store reflecting the last
// operation.
func TestStore_LoginLogoutSequences(t *testing.T) {
	ctx := context.Background()
	ops := []string{"in:T1", "out", "in:T2", "in:T3", "out", "out", "in:T4"}
	s := New(NewMemoryStorage(0), "sid")

	for i, op := range ops {
		if tok, ok := strings.CutPrefix(op, "in:"); ok {
			_ = s.Save(ctx, tok)
			if got, _, _ := s.Get(ctx); got != tok {
				t.Fatalf("step %d: expected %s, got %s", i, tok, got)
			}
			continue
		}
		_ = s.Clear(ctx)
		if s.IsAuthenticated(ctx) {
			t.Fatalf("step %d: expected logged out", i)
		}
	}
}

func TestMemoryStorage_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStorage(time.Hour)
	m.now = func() time.Time { return now }

	_ = m.Put(ctx, "k", "T1")
	if tok, err := m.Fetch(ctx, "k"); err != nil || tok != "T1" {
		t.Fatalf("expected T1, got %q %v", tok, err)
	}

	now = now.Add(time.Hour)
	if _, err := m.Fetch(ctx, "k"); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken after expiry, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expired entry must be purged")
	}
	if ok, _ := m.DeleteIfMatch(ctx, "k", "T1"); ok {
		t.Fatalf("expired entry must not match")
	}
}
