package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
)

// memTokenStore is a ports.TokenStore over a single slot.
type memTokenStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func newTokenStore(token string) *memTokenStore {
	return &memTokenStore{token: token, set: token != ""}
}

func (s *memTokenStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = token, true
	return nil
}

func (s *memTokenStore) Get(context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.set, nil
}

func (s *memTokenStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = "", false
	return nil
}

func (s *memTokenStore) ClearIfMatch(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set && s.token == token {
		s.token, s.set = "", false
	}
	return nil
}

func (s *memTokenStore) IsAuthenticated(ctx context.Context) bool {
	_, ok, _ := s.Get(ctx)
	return ok
}

func (s *memTokenStore) current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.set
}

func withStore(ts ports.TokenStore) context.Context {
	return ports.WithTokenStore(context.Background(), ts)
}

type stubProfiles struct {
	calls     atomic.Int32
	profileFn func(ctx context.Context) (*domain.User, error)
}

func (s *stubProfiles) Profile(ctx context.Context) (*domain.User, error) {
	s.calls.Add(1)
	return s.profileFn(ctx)
}

type stubResolver struct {
	calls     atomic.Int32
	resolveFn func(ctx context.Context) (domain.Session, error)
}

func (s *stubResolver) Resolve(ctx context.Context) (domain.Session, error) {
	s.calls.Add(1)
	return s.resolveFn(ctx)
}

type stubNavBackend struct {
	loginFn     func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	listCartFn  func(ctx context.Context) ([]domain.CartItem, error)
	listPagesFn func(ctx context.Context) ([]domain.Page, error)
	cartCalls   atomic.Int32
	pageCalls   atomic.Int32
}

func (s *stubNavBackend) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubNavBackend) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	s.cartCalls.Add(1)
	return s.listCartFn(ctx)
}

func (s *stubNavBackend) ListPages(ctx context.Context) ([]domain.Page, error) {
	s.pageCalls.Add(1)
	return s.listPagesFn(ctx)
}

func admin() *domain.User {
	return &domain.User{ID: 1, Username: "root", Name: "Ada", Role: domain.RoleAdmin}
}

func staff() *domain.User {
	return &domain.User{ID: 2, Username: "clerk", Role: domain.RoleStaff}
}
