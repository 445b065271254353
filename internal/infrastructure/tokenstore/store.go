// Package tokenstore binds a browser session to its access-token slot in a
// ports.TokenStorage backend, and provides the in-memory backend.
package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
)

// Store is the ports.TokenStore of one browser session.
type Store struct {
	storage ports.TokenStorage
	key     string
}

// New returns the token store of the browser session sessionID.
func New(storage ports.TokenStorage, sessionID string) *Store {
	return &Store{storage: storage, key: StorageKey(sessionID)}
}

// Save overwrites the slot; the token shape is not checked.
func (s *Store) Save(ctx context.Context, token string) error {
	if err := s.storage.Put(ctx, s.key, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context) (string, bool, error) {
	token, err := s.storage.Fetch(ctx, s.key)
	if errors.Is(err, domain.ErrNoToken) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read token: %w", err)
	}
	return token, true, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *Store) ClearIfMatch(ctx context.Context, token string) error {
	if _, err := s.storage.DeleteIfMatch(ctx, s.key, token); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := s.Get(ctx)
	return err == nil && ok
}
