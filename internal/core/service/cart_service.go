package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// CartBackend is the subset of the backend the cart needs.
type CartBackend interface {
	ListCart(ctx context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, in domain.CartItemInput) (*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, id int64, in domain.CartQuantityInput) (*domain.CartItem, error)
	RemoveCartItem(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

// CartService recomputes the cart summary after every mutation made through
// the gateway. Changes made elsewhere show up on the next fetch.
type CartService struct {
	backend CartBackend
	log     zerolog.Logger
}

func NewCartService(backend CartBackend, log zerolog.Logger) *CartService {
	return &CartService{backend: backend, log: log}
}

func (s *CartService) Items(ctx context.Context) ([]domain.CartItem, error) {
	items, err := s.backend.ListCart(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

// Summary never fails: an unreadable cart counts as empty.
func (s *CartService) Summary(ctx context.Context) domain.CartSummary {
	items, err := s.backend.ListCart(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to fetch cart")
		return domain.CartSummary{}
	}
	return domain.SummarizeCart(items)
}

// Add puts a product in the cart. Without a quantity the product's own order
// quantity (its minimum order, or 1) is used.
func (s *CartService) Add(ctx context.Context, in domain.CartItemInput) (domain.CartSummary, error) {
	if in.Quantity <= 0 {
		p, err := s.backend.GetProduct(ctx, in.ProductID)
		if err != nil {
			return domain.CartSummary{}, err
		}
		in.Quantity = p.OrderQuantity()
	}
	if _, err := s.backend.AddToCart(ctx, in); err != nil {
		return domain.CartSummary{}, err
	}
	return s.refresh(ctx)
}

func (s *CartService) Update(ctx context.Context, id int64, in domain.CartQuantityInput) (domain.CartSummary, error) {
	if _, err := s.backend.UpdateCartItem(ctx, id, in); err != nil {
		return domain.CartSummary{}, err
	}
	return s.refresh(ctx)
}

func (s *CartService) Remove(ctx context.Context, id int64) (domain.CartSummary, error) {
	if err := s.backend.RemoveCartItem(ctx, id); err != nil {
		return domain.CartSummary{}, err
	}
	return s.refresh(ctx)
}

func (s *CartService) refresh(ctx context.Context) (domain.CartSummary, error) {
	summary := s.Summary(ctx)
	if err := ctx.Err(); err != nil {
		return domain.CartSummary{}, err
	}
	return summary, nil
}
