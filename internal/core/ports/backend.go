package ports

import (
	"context"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// LoginResult is the backend's token response.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserBackend covers the users resource.
type UserBackend interface {
	// Login saves the issued token into the context's TokenStore before returning.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, in domain.UserInput) (*domain.User, error)
	Profile(ctx context.Context) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SearchUsers(ctx context.Context, field domain.UserSearchField, term string) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, in domain.UserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CatalogBackend covers products, categories and discounts.
type CatalogBackend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, in domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, in domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListDiscounts(ctx context.Context) ([]domain.Discount, error)
	DiscountByCode(ctx context.Context, code string) (*domain.Discount, error)
	CreateDiscount(ctx context.Context, in domain.DiscountInput) (*domain.Discount, error)
	UpdateDiscount(ctx context.Context, id int64, in domain.DiscountInput) (*domain.Discount, error)
	DeleteDiscount(ctx context.Context, id int64) error
}

// CartBackend covers the cart, orders and payments.
type CartBackend interface {
	ListCart(ctx context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, in domain.CartItemInput) (*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, id int64, in domain.CartQuantityInput) (*domain.CartItem, error)
	RemoveCartItem(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error)
	CreatePayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error)
}

// ContentBackend covers pages and events.
type ContentBackend interface {
	ListPages(ctx context.Context) ([]domain.Page, error)
	GetPage(ctx context.Context, id int64) (*domain.Page, error)
	PageBySlug(ctx context.Context, slug string) (*domain.Page, error)
	SearchPages(ctx context.Context, query string) ([]domain.Page, error)

	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, error)
	ListActivities(ctx context.Context, eventID int64) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, eventID int64, in domain.EventInput) (*domain.Activity, error)
}

// Backend is the full REST backend as seen by the storefront.
type Backend interface {
	UserBackend
	CatalogBackend
	CartBackend
	ContentBackend
	Ping(ctx context.Context) error
}
