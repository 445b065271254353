package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
)

func TestSessionService_NoToken_NoNetwork(t *testing.T) {
	profiles := &stubProfiles{profileFn: func(context.Context) (*domain.User, error) {
		t.Fatalf("profile must not be fetched without a token")
		return nil, nil
	}}
	svc := NewSessionService(profiles, zerolog.Nop())

	s, err := svc.Resolve(withStore(newTokenStore("")))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if s.State != domain.SessionAnonymous || s.User != nil {
		t.Fatalf("expected anonymous session, got %+v", s)
	}
}

func TestSessionService_NoStoreInContext(t *testing.T) {
	svc := NewSessionService(&stubProfiles{}, zerolog.Nop())
	s, err := svc.Resolve(context.Background())
	if err != nil || s.State != domain.SessionAnonymous {
		t.Fatalf("expected anonymous session, got %+v %v", s, err)
	}
}

func TestSessionService_ValidToken(t *testing.T) {
	profiles := &stubProfiles{profileFn: func(context.Context) (*domain.User, error) {
		return admin(), nil
	}}
	svc := NewSessionService(profiles, zerolog.Nop())
	store := newTokenStore("T1")

	s, err := svc.Resolve(withStore(store))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !s.IsAuthenticated() || s.User.Username != "root" || s.Role() != domain.RoleAdmin {
		t.Fatalf("unexpected session %+v", s)
	}
	if tok, ok := store.current(); !ok || tok != "T1" {
		t.Fatalf("token must stay stored, got %q %v", tok, ok)
	}
}

func TestSessionService_RejectedTokenIsDropped(t *testing.T) {
	profiles := &stubProfiles{profileFn: func(context.Context) (*domain.User, error) {
		return nil, &domain.RequestFailedError{Operation: "profile", Status: 401, Detail: "Could not validate credentials"}
	}}
	svc := NewSessionService(profiles, zerolog.Nop())
	store := newTokenStore("T_expired")
	ctx := withStore(store)

	s, err := svc.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if s.State != domain.SessionAnonymous {
		t.Fatalf("expected anonymous session, got %+v", s)
	}
	if _, ok := store.current(); ok {
		t.Fatalf("expected token to be cleared")
	}

	if _, err := svc.Resolve(ctx); err != nil {
		t.Fatalf("second Resolve returned error: %v", err)
	}
	if got := profiles.calls.Load(); got != 1 {
		t.Fatalf("expected exactly one profile fetch, got %d", got)
	}
}

func TestSessionService_NetworkFailureAlsoDropsToken(t *testing.T) {
	profiles := &stubProfiles{profileFn: func(context.Context) (*domain.User, error) {
		return nil, domain.ErrNetwork
	}}
	svc := NewSessionService(profiles, zerolog.Nop())
	store := newTokenStore("T1")

	s, err := svc.Resolve(withStore(store))
	if err != nil || s.State != domain.SessionAnonymous {
		t.Fatalf("expected anonymous session, got %+v %v", s, err)
	}
	if _, ok := store.current(); ok {
		t.Fatalf("expected token to be cleared")
	}
}

func TestSessionService_ConcurrentCallersShareFetch(t *testing.T) {
	release := make(chan struct{})
	profiles := &stubProfiles{profileFn: func(context.Context) (*domain.User, error) {
		<-release
		return admin(), nil
	}}
	svc := NewSessionService(profiles, zerolog.Nop())
	ctx := withStore(newTokenStore("T1"))

	const callers = 8
	var wg sync.WaitGroup
	results := make(chan domain.Session, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := svc.Resolve(ctx)
			if err != nil {
				t.Errorf("Resolve returned error: %v", err)
				return
			}
			results <- s
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for s := range results {
		if !s.IsAuthenticated() {
			t.Fatalf("expected authenticated session, got %+v", s)
		}
	}
	if got := profiles.calls.Load(); got != 1 {
		t.Fatalf("expected one shared profile fetch, got %d", got)
	}
}

func TestSessionService_CancelledAppliesNothing(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	profiles := &stubProfiles{profileFn: func(context.Context) (*domain.User, error) {
		<-release
		return nil, errors.New("too late")
	}}
	svc := NewSessionService(profiles, zerolog.Nop())
	store := newTokenStore("T1")

	ctx, cancel := context.WithTimeout(withStore(store), 20*time.Millisecond)
	defer cancel()

	s, err := svc.Resolve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if s.Resolved() {
		t.Fatalf("cancelled resolution must stay unresolved, got %+v", s)
	}
	if tok, ok := store.current(); !ok || tok != "T1" {
		t.Fatalf("token must survive a cancelled resolution")
	}
}

func TestSessionService_StaleFailureKeepsNewToken(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	profiles := &stubProfiles{profileFn: func(context.Context) (*domain.User, error) {
		close(started)
		<-release
		return nil, &domain.RequestFailedError{Status: 401, Detail: "expired"}
	}}
	svc := NewSessionService(profiles, zerolog.Nop())
	store := newTokenStore("T_old")

	done := make(chan domain.Session, 1)
	go func() {
		s, _ := svc.Resolve(withStore(store))
		done <- s
	}()

	<-started
	_ = store.Save(context.Background(), "T_new")
	close(release)

	if s := <-done; s.State != domain.SessionAnonymous {
		t.Fatalf("expected anonymous session, got %+v", s)
	}
	if tok, ok := store.current(); !ok || tok != "T_new" {
		t.Fatalf("a fresh login must survive the stale failure, got %q %v", tok, ok)
	}
}

func TestSessionService_FetchSendsKeyedToken(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	sent := make(chan string, 1)
	profiles := &stubProfiles{profileFn: func(ctx context.Context) (*domain.User, error) {
		close(started)
		<-release
		tok, _, _ := ports.TokenStoreFrom(ctx).Get(ctx)
		sent <- tok
		return &domain.User{Username: "root", Role: domain.RoleAdmin}, nil
	}}
	svc := NewSessionService(profiles, zerolog.Nop())
	store := newTokenStore("T_old")

	done := make(chan struct{})
	go func() {
		_, _ = svc.Resolve(withStore(store))
		close(done)
	}()

	<-started
	_ = store.Save(context.Background(), "T_new")
	close(release)
	<-done

	if tok := <-sent; tok != "T_old" {
		t.Fatalf("profile fetch must carry the token it was keyed by, sent %q", tok)
	}
	if tok, _ := store.current(); tok != "T_new" {
		t.Fatalf("session slot must keep the new token, got %q", tok)
	}
}
