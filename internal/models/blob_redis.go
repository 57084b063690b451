package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisRepo struct {
	redis     *redis.Client
	namespace string
}

func RedisNewRepo(redisClient *redis.Client, namespace string) *RedisRepo {
	return &RedisRepo{
		redis:     redisClient,
		namespace: namespace,
	}
}

func (r *RedisRepo) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.redis.Get(ctx, namespaced(r.namespace, key)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return []byte(val), nil
}

// Put stores without expiry; the blobs live as long as the demo profile.
func (r *RedisRepo) Put(ctx context.Context, key string, data []byte) error {
	if err := r.redis.Set(ctx, namespaced(r.namespace, key), string(data), 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisRepo) Delete(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, namespaced(r.namespace, key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *RedisRepo) Ping(ctx context.Context) error {
	return r.redis.Ping(ctx).Err()
}
