package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
)

// NavBackend is the subset of the backend the navigation needs.
type NavBackend interface {
	Login(ctx context.Context, username, password string) (*ports.LoginResult, error)
	ListCart(ctx context.Context) ([]domain.CartItem, error)
	ListPages(ctx context.Context) ([]domain.Page, error)
}

// NavService composes session, cart count and menu pages into the
// navigation view model.
type NavService struct {
	sessions ports.SessionResolver
	backend  NavBackend
	log      zerolog.Logger
}

func NewNavService(sessions ports.SessionResolver, backend NavBackend, log zerolog.Logger) *NavService {
	return &NavService{sessions: sessions, backend: backend, log: log}
}

// Build resolves the session, counts the cart of an authenticated user and
// collects the menu pages. Cart and page failures degrade to zero/empty; a
// cancelled ctx discards everything fetched so far.
func (s *NavService) Build(ctx context.Context) (*domain.NavViewModel, error) {
	session, err := s.sessions.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	cartCount := 0
	if session.IsAuthenticated() {
		cartCount = s.cartCount(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	menu := s.menu(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return domain.NewNavViewModel(session, cartCount, menu), nil
}

// Login authenticates against the backend (which stores the token) and
// rebuilds the view model in place of a page reload.
func (s *NavService) Login(ctx context.Context, username, password string) (*domain.NavViewModel, error) {
	if _, err := s.backend.Login(ctx, username, password); err != nil {
		return nil, err
	}
	s.log.Info().Str("username", username).Msg("user logged in")
	return s.Build(ctx)
}

// Logout clears the token and returns the reset view model. Nothing is
// refetched; callers keep the menu they already have.
func (s *NavService) Logout(ctx context.Context) (*domain.NavViewModel, error) {
	if tokens := ports.TokenStoreFrom(ctx); tokens != nil {
		if err := tokens.Clear(ctx); err != nil {
			return nil, err
		}
	}
	return domain.NewNavViewModel(domain.AnonymousSession(), 0, nil), nil
}

func (s *NavService) cartCount(ctx context.Context) int {
	items, err := s.backend.ListCart(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to fetch cart for navigation")
		return 0
	}
	return domain.SummarizeCart(items).ItemCount
}

func (s *NavService) menu(ctx context.Context) []domain.Link {
	pages, err := s.backend.ListPages(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to fetch menu pages")
		return []domain.Link{}
	}
	return domain.MenuLinksFromPages(pages)
}
