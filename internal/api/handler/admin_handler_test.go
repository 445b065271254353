package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tooswasher/storefront/internal/api/middleware"
	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
)

// stubBackend embeds the interfaces so tests only implement what they call.
type stubBackend struct {
	ports.CatalogBackend
	ports.UserBackend

	listUsersFn     func(ctx context.Context) ([]domain.User, error)
	searchUsersFn   func(ctx context.Context, field domain.UserSearchField, term string) ([]domain.User, error)
	createProductFn func(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

func (s *stubBackend) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubBackend) SearchUsers(ctx context.Context, field domain.UserSearchField, term string) ([]domain.User, error) {
	return s.searchUsersFn(ctx, field, term)
}

func (s *stubBackend) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	return s.createProductFn(ctx, in)
}

func guardedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, role domain.Role) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionKey, domain.AuthenticatedSession(&domain.User{Username: "root", Role: role}))
	return c
}

func TestAdminHandler_Menu(t *testing.T) {
	e := newEcho()
	h := NewAdminHandler(&stubBackend{}, &stubBackend{}, zerolog.Nop())

	cases := map[domain.Role]int{domain.RoleAdmin: 4, domain.RoleStaff: 0}
	for role, want := range cases {
		rec := httptest.NewRecorder()
		c := guardedContext(e, httptest.NewRequest(http.MethodGet, "/admin", nil), rec, role)
		if err := h.Menu(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		var resp adminMenuResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(resp.Sections) != want {
			t.Fatalf("%s: expected %d sections, got %+v", role, want, resp.Sections)
		}
	}
}

func TestAdminHandler_Menu_WithoutGuard(t *testing.T) {
	e := newEcho()
	h := NewAdminHandler(&stubBackend{}, &stubBackend{}, zerolog.Nop())
	err := h.Menu(e.NewContext(httptest.NewRequest(http.MethodGet, "/admin", nil), httptest.NewRecorder()))
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAdminHandler_ListUsers_Grouped(t *testing.T) {
	e := newEcho()
	backend := &stubBackend{listUsersFn: func(context.Context) ([]domain.User, error) {
		return []domain.User{
			{ID: 1, Username: "root", Role: domain.RoleAdmin},
			{ID: 2, Username: "ann", Role: domain.RoleCustomer},
			{ID: 3, Username: "bob", Role: domain.RoleCustomer},
		}, nil
	}}
	h := NewAdminHandler(backend, backend, zerolog.Nop())

	rec := httptest.NewRecorder()
	if err := h.ListUsers(guardedContext(e, httptest.NewRequest(http.MethodGet, "/admin/users", nil), rec, domain.RoleAdmin)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp domain.UsersByRole
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Admin) != 1 || len(resp.Staff) != 0 || len(resp.Customer) != 2 {
		t.Fatalf("unexpected grouping %+v", resp)
	}
}

func TestAdminHandler_ListUsers_Search(t *testing.T) {
	e := newEcho()
	backend := &stubBackend{searchUsersFn: func(_ context.Context, field domain.UserSearchField, term string) ([]domain.User, error) {
		if field != domain.SearchByEmail || term != "ann@" {
			t.Fatalf("unexpected search %s %q", field, term)
		}
		return []domain.User{{ID: 2, Username: "ann", Role: domain.RoleCustomer}}, nil
	}}
	h := NewAdminHandler(backend, backend, zerolog.Nop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users?by=email&q=ann@", nil)
	if err := h.ListUsers(guardedContext(e, req, rec, domain.RoleAdmin)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_CreateProduct(t *testing.T) {
	e := newEcho()
	backend := &stubBackend{createProductFn: func(_ context.Context, in domain.ProductInput) (*domain.Product, error) {
		if in.Name != "Lamp" || !in.Price.Equal(decimal.RequireFromString("19.90")) {
			t.Fatalf("unexpected input %+v", in)
		}
		return &domain.Product{ID: 5, Name: in.Name, Price: in.Price}, nil
	}}
	h := NewAdminHandler(backend, backend, zerolog.Nop())

	rec := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/admin/products", `{"name":"Lamp","price":19.90,"stock":3}`)
	if err := h.CreateProduct(guardedContext(e, req, rec, domain.RoleAdmin)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAdminHandler_CreateProduct_NegativePrice(t *testing.T) {
	e := newEcho()
	backend := &stubBackend{createProductFn: func(context.Context, domain.ProductInput) (*domain.Product, error) {
		t.Fatalf("should not be called")
		return nil, nil
	}}
	h := NewAdminHandler(backend, backend, zerolog.Nop())

	req := jsonRequest(http.MethodPost, "/admin/products", `{"name":"Lamp","price":-1}`)
	err := h.CreateProduct(guardedContext(e, req, httptest.NewRecorder(), domain.RoleAdmin))
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
