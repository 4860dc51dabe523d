package infrastructure

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"task-service/internal/config"
)

// TokenCache records issued tokens in Redis so operators can see which
// sessions are live. It is strictly best-effort: writes happen off the
// request path, failures are only logged, and token verification never
// consults it.
type TokenCache struct {
	client *redis.Client
}

// NewTokenCache connects to Redis when an address is configured. When
// the address is empty or the server is unreachable the cache is
// disabled and every call becomes a no-op.
func NewTokenCache(cfg *config.Config) *TokenCache {
	if cfg.RedisAddr == "" {
		return &TokenCache{client: nil}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable, token cache disabled: %v", err)
		return &TokenCache{client: nil}
	}

	return &TokenCache{client: client}
}

// RecordToken stores jti -> userID with the token's remaining lifetime.
func (c *TokenCache) RecordToken(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	if c.client == nil || jti == "" {
		return nil
	}
	key := fmt.Sprintf("token:%s", jti)
	return c.client.Set(ctx, key, userID, ttl).Err()
}

// Close releases the underlying connection, if any.
func (c *TokenCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
