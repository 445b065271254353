package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
	"github.com/tooswasher/storefront/internal/pkg/metrics"
)

// RegisterBackend is the slice of the backend account creation needs.
type RegisterBackend interface {
	Register(ctx context.Context, in domain.UserInput) (*domain.User, error)
}

type AuthHandler struct {
	nav      ports.NavComposer
	sessions ports.SessionResolver
	users    RegisterBackend
	log      zerolog.Logger
}

func NewAuthHandler(nav ports.NavComposer, sessions ports.SessionResolver, users RegisterBackend, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{nav: nav, sessions: sessions, users: users, log: log}
}

// Login authenticates against the backend and returns the refreshed navigation.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  domain.NavViewModel
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	vm, err := h.nav.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, vm)
}

// Register creates a customer account. It does not log the user in.
//
// @Summary      Register a new customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	h.log.Info().Str("username", user.Username).Msg("user registered")
	return c.JSON(http.StatusCreated, user)
}

// Logout forgets the stored token and returns the anonymous navigation.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.NavViewModel
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	vm, err := h.nav.Logout(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vm)
}

// Session reports who the browser session belongs to.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Session
// @Router       /api/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	s, err := h.sessions.Resolve(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Nav returns the navigation view model.
//
// @Summary      Navigation bar
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.NavViewModel
// @Router       /api/nav [get]
func (h *AuthHandler) Nav(c echo.Context) error {
	vm, err := h.nav.Build(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vm)
}
