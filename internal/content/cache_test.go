package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCacheHitWithinTTL(t *testing.T) {
	cache := newTTLCache(time.Minute)
	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return "value", nil
	}

	v, result, err := cache.get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, fetchMiss, result)

	v, result, err = cache.get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, fetchHit, result)
	assert.Equal(t, 1, calls)
}

func TestTTLCacheRefetchesAfterExpiry(t *testing.T) {
	cache := newTTLCache(time.Minute)
	now := time.Unix(1700000000, 0)
	cache.now = func() time.Time { return now }

	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	v, _, err := cache.get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	now = now.Add(61 * time.Second)
	v, result, err := cache.get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, fetchMiss, result)
}

func TestTTLCacheServesStaleOnRefetchFailure(t *testing.T) {
	cache := newTTLCache(time.Minute)
	now := time.Unix(1700000000, 0)
	cache.now = func() time.Time { return now }

	_, _, err := cache.get(context.Background(), "k", func(context.Context) (any, error) {
		return "good", nil
	})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	v, result, err := cache.get(context.Background(), "k", func(context.Context) (any, error) {
		return nil, errors.New("cms down")
	})
	require.NoError(t, err)
	assert.Equal(t, "good", v)
	assert.Equal(t, fetchStale, result)
}

func TestTTLCacheErrorWithNothingCached(t *testing.T) {
	cache := newTTLCache(time.Minute)
	_, result, err := cache.get(context.Background(), "k", func(context.Context) (any, error) {
		return nil, errors.New("cms down")
	})
	assert.Error(t, err)
	assert.Equal(t, fetchMiss, result)
}

func TestTTLCacheInvalidate(t *testing.T) {
	cache := newTTLCache(time.Minute)
	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}
	_, _, _ = cache.get(context.Background(), "k", fetch)
	cache.invalidate()
	v, result, err := cache.get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, fetchMiss, result)
}
