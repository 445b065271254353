package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tooswasher/storefront/internal/core/domain"
)

func TestGate_StaysUnknownWhileResolving(t *testing.T) {
	release := make(chan struct{})
	resolver := &stubResolver{resolveFn: func(ctx context.Context) (domain.Session, error) {
		select {
		case <-release:
			return domain.AuthenticatedSession(admin()), nil
		case <-ctx.Done():
			return domain.Session{}, ctx.Err()
		}
	}}
	gate := NewGate(resolver, domain.CapManageCatalog)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	state, err := gate.Resolve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if state != domain.GuardUnknown || gate.State() != domain.GuardUnknown {
		t.Fatalf("gate must stay unknown, got %s", state)
	}
	if gate.Session().Resolved() {
		t.Fatalf("no session may be exposed while unknown")
	}

	close(release)
	state, err = gate.Resolve(context.Background())
	if err != nil || state != domain.GuardAuthorized {
		t.Fatalf("expected authorized, got %s %v", state, err)
	}
}

func TestGate_Decisions(t *testing.T) {
	cases := []struct {
		name    string
		session domain.Session
		allow   domain.Capability
		want    domain.GuardState
	}{
		{"admin on catalog", domain.AuthenticatedSession(admin()), domain.CapManageCatalog, domain.GuardAuthorized},
		{"staff on catalog", domain.AuthenticatedSession(staff()), domain.CapManageCatalog, domain.GuardUnauthorized},
		{"staff on admin menu", domain.AuthenticatedSession(staff()), domain.CapAdminMenu, domain.GuardAuthorized},
		{"anonymous on admin menu", domain.AnonymousSession(), domain.CapAdminMenu, domain.GuardUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gate := NewGate(resolvedAs(tc.session), tc.allow)
			state, err := gate.Resolve(context.Background())
			if err != nil || state != tc.want {
				t.Fatalf("expected %s, got %s %v", tc.want, state, err)
			}
		})
	}
}

func TestGate_SettlesOnce(t *testing.T) {
	resolver := resolvedAs(domain.AuthenticatedSession(staff()))
	gate := NewGate(resolver, domain.CapManageUsers)

	for i := 0; i < 3; i++ {
		if state, _ := gate.Resolve(context.Background()); state != domain.GuardUnauthorized {
			t.Fatalf("expected unauthorized, got %s", state)
		}
	}
	if got := resolver.calls.Load(); got != 1 {
		t.Fatalf("settled gate must not resolve again, got %d calls", got)
	}
}

func TestGate_UnresolvedSessionKeepsWaiting(t *testing.T) {
	gate := NewGate(resolvedAs(domain.Session{}), domain.CapAdminMenu)
	state, err := gate.Resolve(context.Background())
	if err != nil || state != domain.GuardUnknown {
		t.Fatalf("expected unknown, got %s %v", state, err)
	}
}
