package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// CatalogReader is the read side of the catalog.
type CatalogReader interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	DiscountByCode(ctx context.Context, code string) (*domain.Discount, error)
}

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	catalog CatalogReader
}

func NewCatalogHandler(catalog CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /api/products.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   productView
// @Failure      502  {object}  errorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductViews(products))
}

// GetProduct handles GET /api/products/:id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productView
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductView(*p))
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:id: the category and every product
// filed under it or one of its subcategories.
//
// @Summary      Get a category with its products
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	category, err := h.catalog.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryResponse{
		Category: *category,
		Products: toProductViews(domain.ProductsInCategory(products, *category)),
	})
}

// DiscountByCode handles GET /api/discounts/code/:code.
func (h *CatalogHandler) DiscountByCode(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid code")
	}
	d, err := h.catalog.DiscountByCode(c.Request().Context(), code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}
