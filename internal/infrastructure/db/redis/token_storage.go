package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tooswasher/storefront/internal/core/domain"
)

// deleteIfMatch removes KEYS[1] only while it still holds ARGV[1].
var deleteIfMatch = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// TokenStorage keeps browser-session tokens in Redis, one string key per
// session, expiring after ttl.
type TokenStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStorage wraps the given Redis client. A zero ttl disables expiry.
func NewTokenStorage(client *redis.Client, ttl time.Duration) *TokenStorage {
	return &TokenStorage{client: client, ttl: ttl}
}

func (s *TokenStorage) Put(ctx context.Context, key, token string) error {
	if err := s.client.Set(ctx, key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (s *TokenStorage) Fetch(ctx context.Context, key string) (string, error) {
	token, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("redis get token: %w", err)
	}
	return token, nil
}

func (s *TokenStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del token: %w", err)
	}
	return nil
}

func (s *TokenStorage) DeleteIfMatch(ctx context.Context, key, token string) (bool, error) {
	n, err := deleteIfMatch.Run(ctx, s.client, []string{key}, token).Int64()
	if err != nil {
		return false, fmt.Errorf("redis compare-and-delete token: %w", err)
	}
	return n > 0, nil
}

func (s *TokenStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
