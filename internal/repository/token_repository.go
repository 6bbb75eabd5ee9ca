package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	redisapp "nativeblog/internal/storage/redis"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// RedisTokenRepo keeps refresh tokens as expiring redis keys.
type RedisTokenRepo struct {
	client *redisapp.Client
}

func NewRedisTokenRepo(client *redisapp.Client) *RedisTokenRepo {
	return &RedisTokenRepo{client: client}
}

func (r *RedisTokenRepo) SaveRefreshToken(ctx context.Context, subject, token string, exp time.Duration) error {
	return r.client.Set(ctx, refreshTokenKey(subject, token), "1", exp).Err()
}

func (r *RedisTokenRepo) GetRefreshToken(ctx context.Context, subject, token string) (bool, error) {
	val, err := r.client.Get(ctx, refreshTokenKey(subject, token)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	return val == "1", err
}

func (r *RedisTokenRepo) DeleteRefreshToken(ctx context.Context, subject, token string) error {
	return r.client.Del(ctx, refreshTokenKey(subject, token)).Err()
}

func (r *RedisTokenRepo) DeleteAllUserTokens(ctx context.Context, subject string) error {
	keys, err := r.client.Keys(ctx, refreshTokenKey(subject, "*")).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// MemoryTokenRepo is used when no redis address is configured.
type MemoryTokenRepo struct {
	store *cache.Cache
}

func NewMemoryTokenRepo(cleanupInterval time.Duration) *MemoryTokenRepo {
	return &MemoryTokenRepo{store: cache.New(cache.NoExpiration, cleanupInterval)}
}

func (r *MemoryTokenRepo) SaveRefreshToken(_ context.Context, subject, token string, exp time.Duration) error {
	r.store.Set(refreshTokenKey(subject, token), true, exp)
	return nil
}

func (r *MemoryTokenRepo) GetRefreshToken(_ context.Context, subject, token string) (bool, error) {
	_, found := r.store.Get(refreshTokenKey(subject, token))
	return found, nil
}

func (r *MemoryTokenRepo) DeleteRefreshToken(_ context.Context, subject, token string) error {
	r.store.Delete(refreshTokenKey(subject, token))
	return nil
}

func (r *MemoryTokenRepo) DeleteAllUserTokens(_ context.Context, subject string) error {
	prefix := refreshTokenKey(subject, "")
	for key := range r.store.Items() {
		if strings.HasPrefix(key, prefix) {
			r.store.Delete(key)
		}
	}
	return nil
}

// refreshTokenKey builds refresh:<role>:<id>:<token>; subject is "<role>:<id>".
func refreshTokenKey(subject, token string) string {
	return "refresh:" + subject + ":" + token
}
