package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// tokenKeyPrefix namespaces cached tokens inside Redis.
const tokenKeyPrefix = "payment_auth:"

// TokenCache stores verified token identities in Redis so repeat requests
// skip signature verification. Entries expire on their own; a miss is never
// an error.
type TokenCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewTokenCache(client *redis.Client, ttl time.Duration) *TokenCache {
	return &TokenCache{Client: client, TTL: ttl}
}

// InitializeTokenCache connects to Redis and verifies the connection is
// usable before the cache is handed to the middleware.
func InitializeTokenCache(addr string, ttl time.Duration) (*TokenCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return NewTokenCache(client, ttl), nil
}

// Only a hash of the token is used as the cache key; raw tokens never reach
// Redis.
func cacheKey(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return tokenKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached identity for a token, if present and unexpired.
func (c *TokenCache) Get(ctx context.Context, rawToken string) (User, bool) {
	if c.Client == nil {
		return User{}, false
	}

	payload, err := c.Client.Get(ctx, cacheKey(rawToken)).Result()
	if err != nil {
		// redis.Nil and transport errors both fall back to verification
		return User{}, false
	}

	var user User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return User{}, false
	}
	return user, true
}

// Set caches a verified identity for the configured TTL.
func (c *TokenCache) Set(ctx context.Context, rawToken string, user User) error {
	if c.Client == nil {
		return nil
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, cacheKey(rawToken), payload, c.TTL).Err()
}

// Close releases the underlying Redis connection.
func (c *TokenCache) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
