package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"passwordSecurityDemo/internal/port"
)

// redisCmdable is the part of *redis.Client the storage needs.
type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisStorage struct {
	rdb    redisCmdable
	prefix string
	ttl    time.Duration
}

// NewRedis stores values under prefix+key. A zero ttl keeps them forever.
func NewRedis(rdb redisCmdable, prefix string, ttl time.Duration) port.KeyValueStorage {
	return &redisStorage{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *redisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}
	return v, true, nil
}

func (s *redisStorage) Set(ctx context.Context, key, value string) error {
	return errors.Wrapf(s.rdb.Set(ctx, s.prefix+key, value, s.ttl).Err(), "redis set %s", key)
}

func (s *redisStorage) Remove(ctx context.Context, key string) error {
	return errors.Wrapf(s.rdb.Del(ctx, s.prefix+key).Err(), "redis del %s", key)
}
