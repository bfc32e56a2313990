package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisAdapter(client), srv
}

func TestRedisAdapter_SetGetDelete(t *testing.T) {
	cache, _ := newTestAdapter(t)

	require.NoError(t, cache.Set("bike:1", []byte(`{"brand":"Trek"}`), time.Minute))

	got, err := cache.Get("bike:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"brand":"Trek"}`, string(got))

	require.NoError(t, cache.Delete("bike:1"))
	_, err = cache.Get("bike:1")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisAdapter_TTLExpires(t *testing.T) {
	cache, srv := newTestAdapter(t)

	require.NoError(t, cache.Set("badges:all", []byte(`[]`), time.Hour))
	srv.FastForward(2 * time.Hour)

	_, err := cache.Get("badges:all")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisAdapter_DeleteMissingKey(t *testing.T) {
	cache, _ := newTestAdapter(t)
	assert.NoError(t, cache.Delete("bike:missing"))
}
