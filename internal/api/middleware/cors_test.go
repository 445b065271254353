package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestCORS_EchoesAllowedOrigin(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"http://localhost:3000"}))
	e.GET("/api/nav", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	cases := map[string]string{
		"http://localhost:3000": "http://localhost:3000",
		"https://evil.example":  "",
	}
	for origin, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/nav", nil)
		req.Header.Set(echo.HeaderOrigin, origin)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != want {
			t.Fatalf("origin %s: expected allow-origin %q, got %q", origin, want, got)
		}
		if want != "" && rec.Header().Get(echo.HeaderAccessControlAllowCredentials) != "true" {
			t.Fatalf("origin %s: credentials not allowed", origin)
		}
	}
}
