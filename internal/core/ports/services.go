package ports

import (
	"context"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// SessionResolver derives the session from the context's token store.
type SessionResolver interface {
	Resolve(ctx context.Context) (domain.Session, error)
}

// NavComposer builds the navigation view model.
type NavComposer interface {
	Build(ctx context.Context) (*domain.NavViewModel, error)
	Login(ctx context.Context, username, password string) (*domain.NavViewModel, error)
	Logout(ctx context.Context) (*domain.NavViewModel, error)
}

// CartService mutates the cart and reports the recomputed summary.
type CartService interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	Summary(ctx context.Context) domain.CartSummary
	Add(ctx context.Context, in domain.CartItemInput) (domain.CartSummary, error)
	Update(ctx context.Context, id int64, in domain.CartQuantityInput) (domain.CartSummary, error)
	Remove(ctx context.Context, id int64) (domain.CartSummary, error)
}
