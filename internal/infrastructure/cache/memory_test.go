package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chef/backend/internal/domain"
)

func newTestCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache(time.Minute)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value []byte
		ttl   time.Duration
	}{
		{
			name:  "store and retrieve json payload",
			key:   "pantry:user-1:egg,milk",
			value: []byte(`[{"recipeId":"r1","matchCount":1}]`),
			ttl:   1 * time.Minute,
		},
		{
			name:  "store and retrieve empty payload",
			key:   "pantry:user-1:",
			value: []byte{},
			ttl:   1 * time.Minute,
		},
		{
			name:  "store with short TTL",
			key:   "short",
			value: []byte("expires-soon"),
			ttl:   1 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, cache.Set(ctx, tt.key, tt.value, tt.ttl))

			// For short TTL test, wait for expiration
			if tt.ttl < 10*time.Millisecond {
				time.Sleep(10 * time.Millisecond)
				_, err := cache.Get(ctx, tt.key)
				assert.ErrorIs(t, err, domain.ErrCacheMiss)
				return
			}

			got, err := cache.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, cache.Set(ctx, "k", value, time.Minute))
	value[0] = 'x'

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryCache_Get_CacheMiss(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "non-existent-key")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := "delete-test"
	require.NoError(t, cache.Set(ctx, key, []byte("value"), time.Minute))

	_, err := cache.Get(ctx, key)
	require.NoError(t, err)

	require.NoError(t, cache.Delete(ctx, key))

	_, err = cache.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Exists(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	exists, err := cache.Exists(ctx, "exists-test")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, cache.Set(ctx, "exists-test", []byte("value"), time.Minute))
	exists, err = cache.Exists(ctx, "exists-test")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, cache.Set(ctx, "short-ttl", []byte("value"), time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	exists, err = cache.Exists(ctx, "short-ttl")
	require.NoError(t, err)
	assert.False(t, exists, "expired key should not exist")
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	assert.Equal(t, 0, cache.Size())

	for i := 0; i < 5; i++ {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("key-%d", i), []byte{byte(i)}, time.Minute))
	}
	assert.Equal(t, 5, cache.Size())

	require.NoError(t, cache.Delete(ctx, "key-0"))
	assert.Equal(t, 4, cache.Size())

	cache.Clear()
	assert.Equal(t, 0, cache.Size())

	for i := 0; i < 5; i++ {
		_, err := cache.Get(ctx, fmt.Sprintf("key-%d", i))
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	}
}

func TestMemoryCache_CleanupRemovesExpired(t *testing.T) {
	cache := NewMemoryCache(5 * time.Millisecond)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "gone", []byte("v"), time.Millisecond))
	require.NoError(t, cache.Set(ctx, "kept", []byte("v"), time.Minute))

	assert.Eventually(t, func() bool { return cache.Size() == 1 }, time.Second, 5*time.Millisecond)
}

func TestMemoryCache_Concurrent(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", id)
			assert.NoError(t, cache.Set(ctx, key, []byte{byte(id)}, time.Minute))
			_, err := cache.Get(ctx, key)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}

func TestMemoryCache_CloseIsIdempotent(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	assert.NoError(t, cache.Close())
	assert.NoError(t, cache.Close())
}
