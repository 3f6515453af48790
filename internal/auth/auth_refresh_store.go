package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "auth:refresh:"

var ErrRefreshNotFound = errors.New("refresh token not found")

// RefreshStore keeps opaque refresh tokens. Consume is single-use so a
// replayed token fails after rotation.
type RefreshStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type redisRefreshStore struct {
	rdb *redis.Client
}

func NewRedisRefreshStore(rdb *redis.Client) RefreshStore {
	return &redisRefreshStore{rdb: rdb}
}

// RefreshKey tidak menyimpan token mentah di redis.
func RefreshKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return refreshKeyPrefix + hex.EncodeToString(sum[:])
}

func (s *redisRefreshStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, RefreshKey(token), userID, ttl).Err()
}

func (s *redisRefreshStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.GetDel(ctx, RefreshKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshNotFound
	}
	return userID, err
}

func (s *redisRefreshStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, RefreshKey(token)).Err()
}
