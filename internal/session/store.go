package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/fadehouse/fadehouse-api/internal/config"
)

// Store keeps revoked token ids so sign-out invalidates a session
// before its JWT expires. Entries live only as long as the token would.
type Store struct {
	rdb *redis.Client
}

func NewStore(cfg *config.Config) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return &Store{rdb: rdb}
}

func revokedKey(jti string) string {
	return "session:revoked:" + jti
}

func (s *Store) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// token already expired, nothing to revoke
		return nil
	}
	return s.rdb.Set(ctx, revokedKey(jti), "1", ttl).Err()
}

func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
