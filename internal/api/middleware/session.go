package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tooswasher/storefront/internal/core/ports"
	"github.com/tooswasher/storefront/internal/infrastructure/tokenstore"
)

const sessionIDKey = "session_id"

// SessionOptions configures the browser-session cookie.
type SessionOptions struct {
	CookieName string
	Secret     []byte
	TTL        time.Duration
	Secure     bool
}

type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// BrowserSession identifies the browser by a signed cookie and attaches its
// token store to the request context. A missing, tampered or expired cookie
// starts a new, empty browser session.
func BrowserSession(opts SessionOptions, storage ports.TokenStorage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			claims, ok := readSessionCookie(c, opts)
			if !ok {
				claims = &sessionClaims{SID: uuid.NewString()}
			}
			if !ok || needsRefresh(claims, opts.TTL, now) {
				cookie, err := sessionCookie(claims.SID, opts, now)
				if err != nil {
					return err
				}
				c.SetCookie(cookie)
			}

			c.Set(sessionIDKey, claims.SID)
			req := c.Request()
			ts := tokenstore.New(storage, claims.SID)
			c.SetRequest(req.WithContext(ports.WithTokenStore(req.Context(), ts)))

			return next(c)
		}
	}
}

func readSessionCookie(c echo.Context, opts SessionOptions) (*sessionClaims, bool) {
	cookie, err := c.Cookie(opts.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(*jwt.Token) (interface{}, error) {
		return opts.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid || claims.SID == "" {
		return nil, false
	}
	return claims, true
}

// needsRefresh slides the cookie forward once half its lifetime has passed.
func needsRefresh(claims *sessionClaims, ttl time.Duration, now time.Time) bool {
	if claims.IssuedAt == nil {
		return true
	}
	return now.Sub(claims.IssuedAt.Time) > ttl/2
}

func sessionCookie(sid string, opts SessionOptions, now time.Time) (*http.Cookie, error) {
	claims := sessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.TTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(opts.Secret)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     opts.CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// SessionID returns the browser-session id set by BrowserSession.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionIDKey).(string)
	return sid
}
