package domain

// CartItem is one line of the user's cart.
type CartItem struct {
	ID       int64    `json:"id"`
	Product  *Product `json:"product,omitempty"`
	Quantity int      `json:"quantity"`
}

// CartSummary is what the navigation needs to know about the cart.
type CartSummary struct {
	ItemCount int `json:"item_count"`
}

// SummarizeCart counts cart lines.
func SummarizeCart(items []CartItem) CartSummary {
	return CartSummary{ItemCount: len(items)}
}

// CartItemInput adds a product to the cart.
type CartItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity,omitempty" validate:"omitempty,gt=0"`
}

// CartQuantityInput changes the quantity of an existing line.
type CartQuantityInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// Order is an order as returned by the backend.
type Order struct {
	ID     int64       `json:"id"`
	Status string      `json:"status,omitempty"`
	Total  string      `json:"total,omitempty"`
	Items  []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderInput places an order from the current cart, optionally with a code.
type OrderInput struct {
	DiscountCode string `json:"discount_code,omitempty"`
	Address      string `json:"address,omitempty"`
}

// Payment records a payment attempt for an order.
type Payment struct {
	ID      int64  `json:"id"`
	OrderID int64  `json:"order_id"`
	Amount  string `json:"amount,omitempty"`
	Status  string `json:"status,omitempty"`
}

type PaymentInput struct {
	OrderID int64  `json:"order_id" validate:"required,gt=0"`
	Method  string `json:"method,omitempty"`
}
