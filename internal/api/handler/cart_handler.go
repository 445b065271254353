package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
)

// OrderBackend places orders and payments.
type OrderBackend interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error)
	CreatePayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error)
}

type CartHandler struct {
	cart   ports.CartService
	orders OrderBackend
}

func NewCartHandler(cart ports.CartService, orders OrderBackend) *CartHandler {
	return &CartHandler{cart: cart, orders: orders}
}

// List handles GET /api/cart.
//
// @Summary      Cart contents
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/cart [get]
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.cart.Items(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{Items: items, Summary: domain.SummarizeCart(items)})
}

// Add handles POST /api/cart and returns the recomputed summary.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      cartItemRequest  true  "Product and quantity"
// @Success      201   {object}  domain.CartSummary
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req cartItemRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	summary, err := h.cart.Add(c.Request().Context(), domain.CartItemInput{ProductID: req.ProductID, Quantity: req.Quantity})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, summary)
}

// Update handles PUT /api/cart/:id.
func (h *CartHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req cartQuantityRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	summary, err := h.cart.Update(c.Request().Context(), id, domain.CartQuantityInput{Quantity: req.Quantity})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Remove handles DELETE /api/cart/:id.
func (h *CartHandler) Remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	summary, err := h.cart.Remove(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// ListOrders handles GET /api/orders.
func (h *CartHandler) ListOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders.
//
// @Summary      Place an order from the cart
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  false  "Optional discount code and address"
// @Success      201   {object}  domain.Order
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/orders [post]
func (h *CartHandler) CreateOrder(c echo.Context) error {
	var req orderRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	order, err := h.orders.CreateOrder(c.Request().Context(), domain.OrderInput{DiscountCode: req.DiscountCode, Address: req.Address})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// CreatePayment handles POST /api/payments.
func (h *CartHandler) CreatePayment(c echo.Context) error {
	var req paymentRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	payment, err := h.orders.CreatePayment(c.Request().Context(), domain.PaymentInput{OrderID: req.OrderID, Method: req.Method})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}
