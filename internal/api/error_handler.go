package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/pkg/logger"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps backend and domain errors to their HTTP status codes.
//   - Writes nothing once the client has gone away.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		log := logger.FromContext(c.Request().Context(), log)
		if errors.Is(err, context.Canceled) && c.Request().Context().Err() != nil {
			log.Debug().Str("path", c.Path()).Msg("client went away")
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.String())
		}
		return http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Fields: fields}
	}

	// The backend's own status is kept for client errors; its server errors
	// become a bad gateway.
	var rf *domain.RequestFailedError
	if errors.As(err, &rf) {
		if rf.Status >= http.StatusInternalServerError || rf.Status < http.StatusBadRequest {
			log.Warn().Str("operation", rf.Operation).Int("status", rf.Status).Msg(rf.Detail)
			return http.StatusBadGateway, errorResponse{Error: rf.Detail}
		}
		return rf.Status, errorResponse{Error: rf.Detail}
	}

	switch {
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusBadGateway, errorResponse{Error: "backend unreachable, try again later"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errorResponse{Error: "backend timed out"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: "not found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
