package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
	"github.com/tooswasher/storefront/pkg/logger"
)

// AdminHandler serves the guarded management screens. Every route is mounted
// behind a RouteGuard, which has already settled the session.
type AdminHandler struct {
	catalog ports.CatalogBackend
	users   ports.UserBackend
	log     zerolog.Logger
}

func NewAdminHandler(catalog ports.CatalogBackend, users ports.UserBackend, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{catalog: catalog, users: users, log: log}
}

// Menu handles GET /admin: the sections the current role may open.
//
// @Summary      Admin menu
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminMenuResponse
// @Success      202  {object}  map[string]string
// @Failure      302  {string}  string  "redirect to the fallback route"
// @Router       /admin [get]
func (h *AdminHandler) Menu(c echo.Context) error {
	s, err := ctxSession(c)
	if err != nil {
		return err
	}
	sections := []domain.Link{}
	if s.Allows(domain.CapManageCatalog) {
		sections = append(sections,
			domain.Link{Label: "products", Path: "/admin/products"},
			domain.Link{Label: "categories", Path: "/admin/categories"},
			domain.Link{Label: "discounts", Path: "/admin/discounts"},
		)
	}
	if s.Allows(domain.CapManageUsers) {
		sections = append(sections, domain.Link{Label: "users", Path: "/admin/users"})
	}
	return c.JSON(http.StatusOK, adminMenuResponse{Session: s, Sections: sections})
}

// --- Products ---

// ListProducts handles GET /admin/products.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductViews(products))
}

// CreateProduct handles POST /admin/products.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  productView
// @Failure      422   {object}  errorResponse
// @Router       /admin/products [post]
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	p, err := h.catalog.CreateProduct(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	h.audit(c, "product created", p.ID)
	return c.JSON(http.StatusCreated, toProductView(*p))
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req productRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	p, err := h.catalog.UpdateProduct(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	h.audit(c, "product updated", id)
	return c.JSON(http.StatusOK, toProductView(*p))
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}
	h.audit(c, "product deleted", id)
	return c.NoContent(http.StatusNoContent)
}

// --- Categories ---

// CreateCategory handles POST /admin/categories.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	cat, err := h.catalog.CreateCategory(c.Request().Context(), domain.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		return err
	}
	h.audit(c, "category created", cat.ID)
	return c.JSON(http.StatusCreated, cat)
}

// UpdateCategory handles PUT /admin/categories/:id.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req categoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	cat, err := h.catalog.UpdateCategory(c.Request().Context(), id, domain.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		return err
	}
	h.audit(c, "category updated", id)
	return c.JSON(http.StatusOK, cat)
}

// DeleteCategory handles DELETE /admin/categories/:id.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}
	h.audit(c, "category deleted", id)
	return c.NoContent(http.StatusNoContent)
}

// --- Discounts ---

// ListDiscounts handles GET /admin/discounts.
func (h *AdminHandler) ListDiscounts(c echo.Context) error {
	discounts, err := h.catalog.ListDiscounts(c.Request().Context())
	if err != nil {
		return err
	}
	if discounts == nil {
		discounts = []domain.Discount{}
	}
	return c.JSON(http.StatusOK, discounts)
}

// CreateDiscount handles POST /admin/discounts.
//
// @Summary      Create a discount
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      discountRequest  true  "Discount"
// @Success      201   {object}  domain.Discount
// @Failure      422   {object}  errorResponse
// @Router       /admin/discounts [post]
func (h *AdminHandler) CreateDiscount(c echo.Context) error {
	var req discountRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	d, err := h.catalog.CreateDiscount(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	h.audit(c, "discount created", d.ID)
	return c.JSON(http.StatusCreated, d)
}

// UpdateDiscount handles PUT /admin/discounts/:id.
func (h *AdminHandler) UpdateDiscount(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req discountRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	d, err := h.catalog.UpdateDiscount(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	h.audit(c, "discount updated", id)
	return c.JSON(http.StatusOK, d)
}

// DeleteDiscount handles DELETE /admin/discounts/:id.
func (h *AdminHandler) DeleteDiscount(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteDiscount(c.Request().Context(), id); err != nil {
		return err
	}
	h.audit(c, "discount deleted", id)
	return c.NoContent(http.StatusNoContent)
}

// --- Users ---

// ListUsers handles GET /admin/users. With q set it searches by the field
// named in by (username when missing or unknown). Users come back grouped
// by role.
//
// @Summary      List or search users, grouped by role
// @Tags         admin
// @Produce      json
// @Param        by   query     string  false  "username, email, national_id, name or phone_number"
// @Param        q    query     string  false  "Search term"
// @Success      200  {object}  domain.UsersByRole
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	q := strings.TrimSpace(c.QueryParam("q"))

	var (
		users []domain.User
		err   error
	)
	if q == "" {
		users, err = h.users.ListUsers(ctx)
	} else {
		users, err = h.users.SearchUsers(ctx, domain.ParseUserSearchField(c.QueryParam("by")), q)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.GroupUsersByRole(users))
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req adminUserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "password is required")
	}
	u, err := h.users.Register(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	h.audit(c, "user created", u.ID)
	return c.JSON(http.StatusCreated, u)
}

// UpdateUser handles PUT /admin/users/:id.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req adminUserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	u, err := h.users.UpdateUser(c.Request().Context(), id, req.input())
	if err != nil {
		return err
	}
	h.audit(c, "user updated", id)
	return c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.users.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	h.audit(c, "user deleted", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) audit(c echo.Context, msg string, id int64) {
	l := logger.FromContext(c.Request().Context(), h.log)
	ev := l.Info()
	if s, err := ctxSession(c); err == nil {
		ev = ev.Str("actor", s.User.Username)
	}
	ev.Int64("id", id).Msg(msg)
}
