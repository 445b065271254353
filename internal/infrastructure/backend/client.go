// Package backend is the storefront's only way to reach the REST backend.
// A single resty client is shared by the whole process; the access token of
// the calling browser session is attached per request from the context.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
	"github.com/tooswasher/storefront/internal/pkg/metrics"
)

const defaultTimeout = 15 * time.Second

// Config holds the fixed settings of the process-wide client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client implements ports.Backend over HTTP.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

var _ ports.Backend = (*Client)(nil)

// New builds the client once per process.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}
	rc.OnBeforeRequest(attachToken)

	return &Client{http: rc, log: log}
}

// attachToken runs before every request: with a token in the context's
// store the request carries it as a bearer credential, otherwise the
// Authorization header stays unset.
func attachToken(_ *resty.Client, r *resty.Request) error {
	ctx := r.Context()
	tokens := ports.TokenStoreFrom(ctx)
	if tokens == nil {
		return nil
	}
	token, ok, err := tokens.Get(ctx)
	if err != nil || !ok {
		return nil
	}
	r.SetHeader("Authorization", "Bearer "+token)
	return nil
}

// call describes exactly one backend request.
type call struct {
	op         string
	method     string
	path       string
	pathParams map[string]string
	query      map[string]string
	body       any
	form       map[string]string
	// generic is surfaced when the backend sends no usable detail.
	generic string
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	start := time.Now()
	req := c.http.R().SetContext(ctx)
	if cl.pathParams != nil {
		req.SetPathParams(cl.pathParams)
	}
	if cl.query != nil {
		req.SetQueryParams(cl.query)
	}
	switch {
	case cl.form != nil:
		req.SetFormData(cl.form)
	case cl.body != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(cl.body)
	}

	resp, err := req.Execute(cl.method, cl.path)
	metrics.BackendRequestDuration.WithLabelValues(cl.op).Observe(time.Since(start).Seconds())

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		metrics.BackendRequestsTotal.WithLabelValues(cl.op, "network_failure").Inc()
		c.log.Warn().Err(err).Str("operation", cl.op).Msg("backend unreachable")
		return fmt.Errorf("%s: %w: %v", cl.op, domain.ErrNetwork, err)
	}

	c.log.Debug().
		Str("operation", cl.op).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("backend call")

	if resp.IsError() {
		failure := decodeFailure(cl.op, cl.generic, resp.StatusCode(), resp.Body())
		outcome := "request_failed"
		if errors.Is(failure, domain.ErrValidation) {
			outcome = "validation_failed"
		}
		metrics.BackendRequestsTotal.WithLabelValues(cl.op, outcome).Inc()
		return failure
	}

	metrics.BackendRequestsTotal.WithLabelValues(cl.op, "ok").Inc()
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", cl.op, err)
	}
	return nil
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// decodeFailure turns a non-2xx answer into a domain error. The backend's
// detail may be a string, an object with msg, or a list of field errors.
func decodeFailure(op, generic string, status int, body []byte) error {
	failed := &domain.RequestFailedError{Operation: op, Status: status, Detail: generic}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return failed
	}

	var fields []domain.FieldError
	if err := json.Unmarshal(eb.Detail, &fields); err == nil && len(fields) > 0 {
		verr := &domain.ValidationError{Fields: fields}
		if status == http.StatusUnprocessableEntity {
			return verr
		}
		failed.Detail = verr.Error()
		return failed
	}

	var text string
	if err := json.Unmarshal(eb.Detail, &text); err == nil && text != "" {
		failed.Detail = text
		return failed
	}

	var obj struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(eb.Detail, &obj); err == nil && obj.Msg != "" {
		failed.Detail = obj.Msg
	}
	return failed
}

// Ping reports whether the backend answers HTTP at all; any status counts.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.http.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("ping: %w: %v", domain.ErrNetwork, err)
	}
	return nil
}

func idParam(id int64) map[string]string {
	return map[string]string{"id": fmt.Sprint(id)}
}
