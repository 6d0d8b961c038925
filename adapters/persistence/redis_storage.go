package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

const redisSlotPrefix = "portfolio:slot:"

type redisStorage struct {
	rdb *redis.Client
	// ttl of zero keeps keys forever.
	ttl time.Duration
}

// NewRedisStorage uses Redis as the slot store. A positive ttl turns it into
// an expiring cache, which is how CachedStorage uses it.
func NewRedisStorage(rdb *redis.Client, ttl time.Duration) portfolio.Storage {
	return &redisStorage{rdb: rdb, ttl: ttl}
}

func (r *redisStorage) Get(ctx context.Context, slot string) (string, error) {
	v, err := r.rdb.Get(ctx, redisSlotPrefix+slot).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", portfolio.ErrSlotNotFound
		}
		return "", apperror.NewInternal("failed to read slot from redis", err)
	}
	return v, nil
}

func (r *redisStorage) Set(ctx context.Context, slot string, value string) error {
	if err := r.rdb.Set(ctx, redisSlotPrefix+slot, value, r.ttl).Err(); err != nil {
		return apperror.NewInternal("failed to write slot to redis", err)
	}
	return nil
}

func (r *redisStorage) Name() string { return "redis" }
