package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/infrastructure/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "taxhelper:registry:status:1234567891", cache.Key("1234567891"))
}

func TestNewRegistryCache_URLInvalidaDegrada(t *testing.T) {
	c, err := cache.NewRegistryCache(context.Background(), "http://no-es-redis")
	assert.Error(t, err)
	require.NotNil(t, c)

	// sin cliente: caché siempre vacía
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, &entity.RegistryStatus{BusinessNumber: "1234567891"}, time.Minute))
	got, err := c.Get(ctx, "1234567891")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx, "1234567891"))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestRegistryCache_ClienteSinServidorDevuelveError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := cache.NewRegistryCacheFromClient(client)
	defer c.Close()

	ctx := context.Background()
	_, err := c.Get(ctx, "1234567891")
	assert.Error(t, err)
	assert.Error(t, c.Set(ctx, &entity.RegistryStatus{BusinessNumber: "1234567891"}, time.Minute))
	assert.Error(t, c.Invalidate(ctx, "1234567891"))
	assert.Error(t, c.Ping(ctx))
}
