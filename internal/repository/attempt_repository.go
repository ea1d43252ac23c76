package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapp "portfolio/internal/storage/redis"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// RedisAttemptRepo keeps failed sign-in counters in Redis so that every
// instance behind a load balancer sees the same numbers.
type RedisAttemptRepo struct {
	Client *redisapp.Client
}

func NewRedisAttemptRepo(client *redisapp.Client) *RedisAttemptRepo {
	return &RedisAttemptRepo{Client: client}
}

func (r *RedisAttemptRepo) Attempts(ctx context.Context, key string) (int, error) {
	const op = "repository.RedisAttemptRepo.Attempts"

	n, err := r.Client.Get(ctx, attemptKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// RecordAttempt increments the counter. The window starts at the first failure.
func (r *RedisAttemptRepo) RecordAttempt(ctx context.Context, key string, window time.Duration) (int, error) {
	const op = "repository.RedisAttemptRepo.RecordAttempt"

	n, err := r.Client.Incr(ctx, attemptKey(key)).Result()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if n == 1 {
		if err := r.Client.Expire(ctx, attemptKey(key), window).Err(); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	return int(n), nil
}

func (r *RedisAttemptRepo) ResetAttempts(ctx context.Context, key string) error {
	const op = "repository.RedisAttemptRepo.ResetAttempts"

	if err := r.Client.Del(ctx, attemptKey(key)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func attemptKey(key string) string {
	return "signin:attempts:" + key
}

// CacheAttemptRepo is the in-process fallback used when Redis is not configured.
type CacheAttemptRepo struct {
	cache *cache.Cache
}

func NewCacheAttemptRepo(window time.Duration) *CacheAttemptRepo {
	return &CacheAttemptRepo{cache: cache.New(window, 2*window)}
}

func (r *CacheAttemptRepo) Attempts(_ context.Context, key string) (int, error) {
	v, ok := r.cache.Get(key)
	if !ok {
		return 0, nil
	}
	return v.(int), nil
}

func (r *CacheAttemptRepo) RecordAttempt(_ context.Context, key string, window time.Duration) (int, error) {
	if err := r.cache.Add(key, 1, window); err == nil {
		return 1, nil
	}

	n, err := r.cache.IncrementInt(key, 1)
	if err != nil {
		// expired between Add and IncrementInt
		r.cache.Set(key, 1, window)
		return 1, nil
	}

	return n, nil
}

func (r *CacheAttemptRepo) ResetAttempts(_ context.Context, key string) error {
	r.cache.Delete(key)
	return nil
}
