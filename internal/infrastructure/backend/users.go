package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
)

var errNoTokenStore = errors.New("login: no token store attached to request")

// Login exchanges credentials for a token (form-encoded, password grant) and
// saves it before returning, so the next call already carries it.
func (c *Client) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	tokens := ports.TokenStoreFrom(ctx)
	if tokens == nil {
		return nil, errNoTokenStore
	}

	var res ports.LoginResult
	err := c.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/users/token",
		form: map[string]string{
			"username":   username,
			"password":   password,
			"grant_type": "password",
		},
		generic: "Login failed",
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, &domain.RequestFailedError{Operation: "login", Status: http.StatusBadGateway, Detail: "Login failed"}
	}

	if err := tokens.Save(ctx, res.AccessToken); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	var u domain.User
	err := c.do(ctx, call{
		op: "register", method: http.MethodPost, path: "/users/register",
		body: in, generic: "Registration failed",
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Profile fetches the user the current token belongs to.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var u domain.User
	err := c.do(ctx, call{
		op: "profile", method: http.MethodGet, path: "/users/me",
		generic: "Failed to fetch profile",
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, call{
		op: "list_users", method: http.MethodGet, path: "/users/",
		generic: "Failed to fetch users",
	}, &users)
	return users, err
}

// SearchUsers calls /users/search-by-<field>/ with the term as "query".
func (c *Client) SearchUsers(ctx context.Context, field domain.UserSearchField, term string) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, call{
		op:      "search_users",
		method:  http.MethodGet,
		path:    "/users/search-by-" + strings.ReplaceAll(string(field), "_", "-") + "/",
		query:   map[string]string{"query": term},
		generic: "Search failed",
	}, &users)
	return users, err
}

func (c *Client) UpdateUser(ctx context.Context, id int64, in domain.UserInput) (*domain.User, error) {
	var u domain.User
	err := c.do(ctx, call{
		op: "update_user", method: http.MethodPut, path: "/users/{id}",
		pathParams: idParam(id), body: in, generic: "Failed to save user",
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		op: "delete_user", method: http.MethodDelete, path: "/users/{id}",
		pathParams: idParam(id), generic: "Failed to delete user",
	}, nil)
}
