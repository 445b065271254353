package ports

import "context"

// TokenStorage persists one access token per browser-session key. Every
// method is a single atomic operation at the storage layer.
type TokenStorage interface {
	Put(ctx context.Context, key, token string) error
	// Fetch returns domain.ErrNoToken when the slot is empty.
	Fetch(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// DeleteIfMatch removes the slot only while it still holds token.
	DeleteIfMatch(ctx context.Context, key, token string) (bool, error)
	Ping(ctx context.Context) error
}

// TokenStore is the token slot of a single browser session.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Get(ctx context.Context) (token string, ok bool, err error)
	Clear(ctx context.Context) error
	ClearIfMatch(ctx context.Context, token string) error
	// IsAuthenticated is a presence check only; it says nothing about expiry.
	IsAuthenticated(ctx context.Context) bool
}

type tokenStoreKey struct{}

// WithTokenStore attaches the browser session's token store to ctx. The API
// client and the session resolver read it from there.
func WithTokenStore(ctx context.Context, ts TokenStore) context.Context {
	return context.WithValue(ctx, tokenStoreKey{}, ts)
}

// TokenStoreFrom returns the token store attached to ctx, or nil.
func TokenStoreFrom(ctx context.Context) TokenStore {
	ts, _ := ctx.Value(tokenStoreKey{}).(TokenStore)
	return ts
}
