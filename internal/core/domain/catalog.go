package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Product is a catalog item as returned by the backend.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	MinimumOrder int             `json:"minimum_order,omitempty"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	Image        string          `json:"image,omitempty"`
	Discount     *Discount       `json:"discount,omitempty"`
}

// OrderQuantity is the quantity added to the cart by default.
func (p Product) OrderQuantity() int {
	if p.MinimumOrder > 0 {
		return p.MinimumOrder
	}
	return 1
}

// FinalPrice applies the product discount, if any.
func (p Product) FinalPrice() decimal.Decimal {
	if p.Discount == nil {
		return p.Price
	}
	return p.Discount.Apply(p.Price)
}

// ProductInput is the body of product create/update calls.
type ProductInput struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock" validate:"gte=0"`
	MinimumOrder int             `json:"minimum_order" validate:"gte=0"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	Image        string          `json:"image,omitempty"`
}

// Category is a node of the category tree.
type Category struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	ParentID      *int64     `json:"parent_id,omitempty"`
	Subcategories []Category `json:"subcategories,omitempty"`
}

// CategoryInput is the body of category create/update calls.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

// ProductsInCategory filters products belonging to categoryID or one of its
// descendants in tree.
func ProductsInCategory(products []Product, tree Category) []Product {
	ids := map[int64]struct{}{}
	var walk func(Category)
	walk = func(c Category) {
		ids[c.ID] = struct{}{}
		for _, sub := range c.Subcategories {
			walk(sub)
		}
	}
	walk(tree)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == nil {
			continue
		}
		if _, ok := ids[*p.CategoryID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Discount is a percentage reduction, optionally capped and bound to a product.
type Discount struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code,omitempty"`
	Percent      decimal.Decimal `json:"percent"`
	MaxDiscount  decimal.Decimal `json:"max_discount"`
	ProductID    *int64          `json:"product_id,omitempty"`
	MinimumOrder int             `json:"minimum_order,omitempty"`
}

// Apply returns price reduced by the discount. A positive MaxDiscount caps the
// reduction; the result never drops below zero.
func (d Discount) Apply(price decimal.Decimal) decimal.Decimal {
	off := price.Mul(d.Percent).Div(hundred)
	if d.MaxDiscount.IsPositive() && off.GreaterThan(d.MaxDiscount) {
		off = d.MaxDiscount
	}
	final := price.Sub(off)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}

// DiscountInput is the body of discount create/update calls.
type DiscountInput struct {
	Code         string          `json:"code,omitempty"`
	Percent      decimal.Decimal `json:"percent"`
	MaxDiscount  decimal.Decimal `json:"max_discount"`
	ProductID    *int64          `json:"product_id,omitempty"`
	MinimumOrder int             `json:"minimum_order,omitempty" validate:"gte=0"`
}
