package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
	"github.com/tooswasher/storefront/internal/core/service"
	"github.com/tooswasher/storefront/internal/pkg/metrics"
)

// SessionKey is where guarded handlers find the resolved domain.Session.
const SessionKey = "session"

const defaultGuardWait = 5 * time.Second

// GuardOptions configures a RouteGuard.
type GuardOptions struct {
	// Route labels metrics, e.g. "admin_products".
	Route string
	// Wait bounds session resolution before answering with the loading state.
	Wait time.Duration
	// Fallback is where unauthorized requests are redirected.
	Fallback string
}

type pendingResponse struct {
	State string `json:"state"`
}

// RouteGuard protects a route group with a capability. It redirects only
// once the session is resolved and found lacking; while the session is still
// unknown it answers with a neutral loading state instead.
func RouteGuard(sessions ports.SessionResolver, allow domain.Capability, opts GuardOptions) echo.MiddlewareFunc {
	wait := opts.Wait
	if wait <= 0 {
		wait = defaultGuardWait
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			gate := service.NewGate(sessions, allow)

			waitCtx, cancel := context.WithTimeout(ctx, wait)
			state, err := gate.Resolve(waitCtx)
			waitErr := waitCtx.Err()
			cancel()

			switch state {
			case domain.GuardAuthorized:
				metrics.GuardDecisionsTotal.WithLabelValues(opts.Route, "authorized").Inc()
				c.Set(SessionKey, gate.Session())
				return next(c)
			case domain.GuardUnauthorized:
				metrics.GuardDecisionsTotal.WithLabelValues(opts.Route, "unauthorized").Inc()
				return c.Redirect(http.StatusFound, opts.Fallback)
			}

			// Client went away: nothing to render.
			if ctx.Err() != nil {
				return nil
			}
			if err != nil && waitErr == nil {
				return err
			}

			metrics.GuardDecisionsTotal.WithLabelValues(opts.Route, "pending").Inc()
			c.Response().Header().Set("Retry-After", "1")
			return c.JSON(http.StatusAccepted, pendingResponse{State: domain.GuardUnknown.String()})
		}
	}
}
