package handler

import (
	"github.com/shopspring/decimal"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type registerRequest struct {
	Username    string `json:"username"     validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=6"`
	Name        string `json:"name"`
	LastName    string `json:"last_name"`
	NationalID  string `json:"national_id"`
	Address     string `json:"address"`
	State       string `json:"state"`
	City        string `json:"city"`
	PhoneNumber string `json:"phone_number"`
}

func (r registerRequest) input() domain.UserInput {
	return domain.UserInput{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		Name:        r.Name,
		LastName:    r.LastName,
		NationalID:  r.NationalID,
		Address:     r.Address,
		State:       r.State,
		City:        r.City,
		PhoneNumber: r.PhoneNumber,
	}
}

type adminUserRequest struct {
	Username    string `json:"username"     validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"omitempty,min=6"`
	Name        string `json:"name"`
	LastName    string `json:"last_name"`
	NationalID  string `json:"national_id"`
	Address     string `json:"address"`
	State       string `json:"state"`
	City        string `json:"city"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"         validate:"omitempty,oneof=customer staff admin"`
}

func (r adminUserRequest) input() domain.UserInput {
	return domain.UserInput{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		Name:        r.Name,
		LastName:    r.LastName,
		NationalID:  r.NationalID,
		Address:     r.Address,
		State:       r.State,
		City:        r.City,
		PhoneNumber: r.PhoneNumber,
		Role:        r.Role,
	}
}

type productRequest struct {
	Name         string          `json:"name"          validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"         validate:"gte=0"`
	Stock        int             `json:"stock"         validate:"gte=0"`
	MinimumOrder int             `json:"minimum_order" validate:"gte=0"`
	CategoryID   *int64          `json:"category_id"`
	Image        string          `json:"image"`
}

func (r productRequest) input() domain.ProductInput {
	return domain.ProductInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Stock:        r.Stock,
		MinimumOrder: r.MinimumOrder,
		CategoryID:   r.CategoryID,
		Image:        r.Image,
	}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id"`
}

type discountRequest struct {
	Code         string          `json:"code"`
	Percent      decimal.Decimal `json:"percent"       validate:"gt=0,lte=100"`
	MaxDiscount  decimal.Decimal `json:"max_discount"  validate:"gte=0"`
	ProductID    *int64          `json:"product_id"`
	MinimumOrder int             `json:"minimum_order" validate:"gte=0"`
}

func (r discountRequest) input() domain.DiscountInput {
	return domain.DiscountInput{
		Code:         r.Code,
		Percent:      r.Percent,
		MaxDiscount:  r.MaxDiscount,
		ProductID:    r.ProductID,
		MinimumOrder: r.MinimumOrder,
	}
}

type eventRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type cartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	// Quantity defaults to the product's order quantity when omitted.
	Quantity  int   `json:"quantity"   validate:"omitempty,gt=0"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type orderRequest struct {
	DiscountCode string `json:"discount_code"`
	Address      string `json:"address"`
}

type paymentRequest struct {
	OrderID int64  `json:"order_id" validate:"required,gt=0"`
	Method  string `json:"method"`
}

// productView adds the discounted price the storefront displays.
type productView struct {
	domain.Product
	FinalPrice decimal.Decimal `json:"final_price"`
}

func toProductView(p domain.Product) productView {
	return productView{Product: p, FinalPrice: p.FinalPrice()}
}

func toProductViews(ps []domain.Product) []productView {
	out := make([]productView, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductView(p))
	}
	return out
}

type categoryResponse struct {
	Category domain.Category `json:"category"`
	Products []productView   `json:"products"`
}

type cartResponse struct {
	Items   []domain.CartItem  `json:"items"`
	Summary domain.CartSummary `json:"summary"`
}

type adminMenuResponse struct {
	Session  domain.Session `json:"session"`
	Sections []domain.Link  `json:"sections"`
}
