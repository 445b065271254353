package backend

import (
	"context"
	"net/http"

	"github.com/tooswasher/storefront/internal/core/domain"
)

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, call{
		op: "list_products", method: http.MethodGet, path: "/products/",
		generic: "Failed to fetch products",
	}, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, call{
		op: "get_product", method: http.MethodGet, path: "/products/{id}",
		pathParams: idParam(id), generic: "Failed to fetch product",
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, call{
		op: "create_product", method: http.MethodPost, path: "/products/",
		body: in, generic: "Failed to save product",
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in domain.ProductInput) (*domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, call{
		op: "update_product", method: http.MethodPut, path: "/products/{id}",
		pathParams: idParam(id), body: in, generic: "Failed to save product",
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		op: "delete_product", method: http.MethodDelete, path: "/products/{id}",
		pathParams: idParam(id), generic: "Failed to delete product",
	}, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := c.do(ctx, call{
		op: "list_categories", method: http.MethodGet, path: "/categories/",
		generic: "Failed to fetch categories",
	}, &out)
	return out, err
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var cat domain.Category
	err := c.do(ctx, call{
		op: "get_category", method: http.MethodGet, path: "/categories/{id}",
		pathParams: idParam(id), generic: "Failed to fetch category",
	}, &cat)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	var cat domain.Category
	err := c.do(ctx, call{
		op: "create_category", method: http.MethodPost, path: "/categories/",
		body: in, generic: "Failed to save category",
	}, &cat)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in domain.CategoryInput) (*domain.Category, error) {
	var cat domain.Category
	err := c.do(ctx, call{
		op: "update_category", method: http.MethodPut, path: "/categories/{id}",
		pathParams: idParam(id), body: in, generic: "Failed to save category",
	}, &cat)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		op: "delete_category", method: http.MethodDelete, path: "/categories/{id}",
		pathParams: idParam(id), generic: "Failed to delete category",
	}, nil)
}

func (c *Client) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	var out []domain.Discount
	err := c.do(ctx, call{
		op: "list_discounts", method: http.MethodGet, path: "/discounts/",
		generic: "Failed to fetch discounts",
	}, &out)
	return out, err
}

func (c *Client) DiscountByCode(ctx context.Context, code string) (*domain.Discount, error) {
	var d domain.Discount
	err := c.do(ctx, call{
		op: "discount_by_code", method: http.MethodGet, path: "/discounts/code/{code}",
		pathParams: map[string]string{"code": code}, generic: "Invalid discount code",
	}, &d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) CreateDiscount(ctx context.Context, in domain.DiscountInput) (*domain.Discount, error) {
	var d domain.Discount
	err := c.do(ctx, call{
		op: "create_discount", method: http.MethodPost, path: "/discounts/",
		body: in, generic: "Failed to save discount",
	}, &d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) UpdateDiscount(ctx context.Context, id int64, in domain.DiscountInput) (*domain.Discount, error) {
	var d domain.Discount
	err := c.do(ctx, call{
		op: "update_discount", method: http.MethodPut, path: "/discounts/{id}",
		pathParams: idParam(id), body: in, generic: "Failed to save discount",
	}, &d)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) DeleteDiscount(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		op: "delete_discount", method: http.MethodDelete, path: "/discounts/{id}",
		pathParams: idParam(id), generic: "Failed to delete discount",
	}, nil)
}
