package backend

import (
	"context"
	"net/http"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// ListCart returns every line of the current user's cart.
func (c *Client) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := c.do(ctx, call{
		op: "list_cart", method: http.MethodGet, path: "/cart/",
		generic: "Failed to fetch cart",
	}, &out)
	return out, err
}

func (c *Client) AddToCart(ctx context.Context, in domain.CartItemInput) (*domain.CartItem, error) {
	var item domain.CartItem
	err := c.do(ctx, call{
		op: "add_to_cart", method: http.MethodPost, path: "/cart/",
		body: in, generic: "Failed to add to cart",
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, id int64, in domain.CartQuantityInput) (*domain.CartItem, error) {
	var item domain.CartItem
	err := c.do(ctx, call{
		op: "update_cart_item", method: http.MethodPut, path: "/cart/{id}",
		pathParams: idParam(id), body: in, generic: "Failed to update cart",
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		op: "remove_cart_item", method: http.MethodDelete, path: "/cart/{id}",
		pathParams: idParam(id), generic: "Failed to remove from cart",
	}, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := c.do(ctx, call{
		op: "list_orders", method: http.MethodGet, path: "/orders/",
		generic: "Failed to fetch orders",
	}, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	var o domain.Order
	err := c.do(ctx, call{
		op: "create_order", method: http.MethodPost, path: "/orders/",
		body: in, generic: "Failed to place order",
	}, &o)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CreatePayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	var p domain.Payment
	err := c.do(ctx, call{
		op: "create_payment", method: http.MethodPost, path: "/payments/payments/",
		body: in, generic: "Payment failed",
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
