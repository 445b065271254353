package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
)

type stubCart struct {
	ports.CartService

	addFn func(ctx context.Context, in domain.CartItemInput) (domain.CartSummary, error)
}

func (s *stubCart) Add(ctx context.Context, in domain.CartItemInput) (domain.CartSummary, error) {
	return s.addFn(ctx, in)
}

func TestCartHandler_Add(t *testing.T) {
	e := newEcho()
	cart := &stubCart{addFn: func(_ context.Context, in domain.CartItemInput) (domain.CartSummary, error) {
		if in.ProductID != 7 || in.Quantity != 2 {
			t.Fatalf("unexpected input %+v", in)
		}
		return domain.CartSummary{ItemCount: 3}, nil
	}}
	h := NewCartHandler(cart, nil)

	rec := httptest.NewRecorder()
	if err := h.Add(e.NewContext(jsonRequest(http.MethodPost, "/api/cart", `{"product_id":7,"quantity":2}`), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var summary domain.CartSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil || summary.ItemCount != 3 {
		t.Fatalf("unexpected summary %s", rec.Body.String())
	}
}

func TestCartHandler_Add_QuantityOptional(t *testing.T) {
	e := newEcho()
	cart := &stubCart{addFn: func(_ context.Context, in domain.CartItemInput) (domain.CartSummary, error) {
		if in.ProductID != 7 || in.Quantity != 0 {
			t.Fatalf("unexpected input %+v", in)
		}
		return domain.CartSummary{ItemCount: 1}, nil
	}}
	h := NewCartHandler(cart, nil)

	rec := httptest.NewRecorder()
	if err := h.Add(e.NewContext(jsonRequest(http.MethodPost, "/api/cart", `{"product_id":7}`), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCartHandler_Add_NegativeQuantity(t *testing.T) {
	e := newEcho()
	h := NewCartHandler(&stubCart{}, nil)

	err := h.Add(e.NewContext(jsonRequest(http.MethodPost, "/api/cart", `{"product_id":7,"quantity":-1}`), httptest.NewRecorder()))
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
