package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string
	Count int
}

func TestMemoryCache_SetGet(t *testing.T) {
	mc := NewMemoryCache[entry]()
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", entry{Name: "Shoes", Count: 2}, 0))

	got, err := mc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, entry{Name: "Shoes", Count: 2}, got)

	_, err = mc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Expiration(t *testing.T) {
	mc := NewMemoryCacheWithOptions[string](4, time.Hour)
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "short", "v", 10*time.Millisecond))
	require.NoError(t, mc.Set(ctx, "forever", "v", 0))
	time.Sleep(25 * time.Millisecond)

	_, err := mc.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)

	v, err := mc.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestMemoryCache_Janitor(t *testing.T) {
	mc := NewMemoryCacheWithOptions[string](1, 5*time.Millisecond)
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", "v", time.Millisecond))

	assert.Eventually(t, func() bool {
		s := mc.shards[0]
		s.RLock()
		defer s.RUnlock()
		return len(s.items) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestMemoryCache_Delete(t *testing.T) {
	mc := NewMemoryCache[string]()
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", "1", 0))
	require.NoError(t, mc.Set(ctx, "b", "2", 0))
	require.NoError(t, mc.Set(ctx, "c", "3", 0))

	require.NoError(t, mc.Delete(ctx, "a", "b", "nope"))

	_, err := mc.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = mc.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
	v, err := mc.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestMemoryCache_StopIsIdempotent(t *testing.T) {
	mc := NewMemoryCache[string]()
	mc.Stop()
	assert.NotPanics(t, mc.Stop)
}

func TestMemoryCache_Concurrent(t *testing.T) {
	mc := NewMemoryCache[int]()
	defer mc.Stop()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = mc.Set(ctx, key, i, 0)
			v, err := mc.Get(ctx, key)
			assert.NoError(t, err)
			assert.Equal(t, i, v)
			_ = mc.Delete(ctx, key)
		}(i)
	}
	wg.Wait()
}
