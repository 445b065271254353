package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tooswasher/storefront/internal/core/domain"
)

const tokenCollection = "session_tokens"

// TokenStorage keeps one document per browser session. A TTL index on
// expires_at lets MongoDB purge abandoned sessions.
type TokenStorage struct {
	coll *mongo.Collection
	ttl  time.Duration
	now  func() time.Time
}

type tokenDoc struct {
	Key       string    `bson:"_id"`
	Token     string    `bson:"token"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func NewTokenStorage(db *mongo.Database, ttl time.Duration) *TokenStorage {
	return &TokenStorage{coll: db.Collection(tokenCollection), ttl: ttl, now: time.Now}
}

// EnsureIndexes creates the TTL index. Safe to call on every start.
func (s *TokenStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("create token ttl index: %w", err)
	}
	return nil
}

func (s *TokenStorage) Put(ctx context.Context, key, token string) error {
	doc := tokenDoc{Key: key, Token: token, ExpiresAt: s.expiry()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}

func (s *TokenStorage) Fetch(ctx context.Context, key string) (string, error) {
	var doc tokenDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", domain.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("find token: %w", err)
	}
	// The TTL monitor runs once a minute; do not serve what it has not purged yet.
	if !doc.ExpiresAt.IsZero() && !s.now().Before(doc.ExpiresAt) {
		return "", domain.ErrNoToken
	}
	return doc.Token, nil
}

func (s *TokenStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (s *TokenStorage) DeleteIfMatch(ctx context.Context, key, token string) (bool, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": key, "token": token})
	if err != nil {
		return false, fmt.Errorf("delete token: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (s *TokenStorage) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}

func (s *TokenStorage) expiry() time.Time {
	if s.ttl <= 0 {
		// Far enough out for the TTL index to never fire.
		return time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return s.now().Add(s.ttl).UTC()
}
