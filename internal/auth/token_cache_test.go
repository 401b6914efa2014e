package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"payment-gateway/internal/auth"
)

func TestTokenCacheNilClientIsSafe(t *testing.T) {
	cache := auth.NewTokenCache(nil, time.Minute)

	_, ok := cache.Get(context.Background(), "token")
	assert.False(t, ok)
	assert.NoError(t, cache.Set(context.Background(), "token", auth.User{ID: "u1"}))
	assert.NoError(t, cache.Close())
}

// TestTokenCacheIntegration exercises the cache against a real Redis
// container.
func TestTokenCacheIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Redis integration test in short mode")
	}

	ctx := context.Background()
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:latest",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}
	defer redisContainer.Terminate(ctx)

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)
	addr := host + ":" + port.Port()

	cache, err := auth.InitializeTokenCache(addr, time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	user := auth.User{ID: "u1", Name: "Priya Sharma", Email: "priya@example.com"}

	// Miss before the first Set
	_, ok := cache.Get(ctx, "token-a")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "token-a", user))

	got, ok := cache.Get(ctx, "token-a")
	require.True(t, ok)
	assert.Equal(t, user, got)

	// Tokens are independent keys
	_, ok = cache.Get(ctx, "token-b")
	assert.False(t, ok)

	// Entries expire after the configured TTL
	short := auth.NewTokenCache(cache.Client, time.Second)
	require.NoError(t, short.Set(ctx, "token-short", user))
	_, ok = short.Get(ctx, "token-short")
	require.True(t, ok)

	time.Sleep(1500 * time.Millisecond)
	_, ok = short.Get(ctx, "token-short")
	assert.False(t, ok)
}

// TestMiddlewareUsesTokenCache verifies the middleware serves repeat
// requests from the cache once a token has been verified.
func TestMiddlewareUsesTokenCache(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Redis integration test in short mode")
	}

	ctx := context.Background()
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:latest",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}
	defer redisContainer.Terminate(ctx)

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cache, err := auth.InitializeTokenCache(host+":"+port.Port(), time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "u1",
		"name":  "Priya Sharma",
		"email": "priya@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	middleware := auth.Middleware(testSecret, cache)

	var got auth.User
	var ok bool
	rec := serve(middleware, captureHandler(&got, &ok), "Bearer "+token)
	require.Equal(t, 200, rec.Code)
	require.True(t, ok)
	assert.Equal(t, "u1", got.ID)

	// The verified identity is now cached under the token
	cached, hit := cache.Get(ctx, token)
	require.True(t, hit)
	assert.Equal(t, got, cached)

	// A second request succeeds straight from the cache
	got, ok = auth.User{}, false
	rec = serve(middleware, captureHandler(&got, &ok), "Bearer "+token)
	require.Equal(t, 200, rec.Code)
	require.True(t, ok)
	assert.Equal(t, "Priya Sharma", got.Name)
}
