//go:build integration_test || all_tests

package streak_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/streak"
	testingpkg "github.com/2beens/fittrack/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_RealRedis(t *testing.T) {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(t)
	cache := streak.NewRedisCache(rdb, time.Minute)
	owner := fmt.Sprintf("it-owner-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		_ = rdb.Del(ctx, "fittrack::streak::"+owner, "fittrack::streak-gen::"+owner).Err()
	})

	_, ok, err := cache.Get(ctx, owner, "2024-03-10")
	require.NoError(t, err)
	assert.False(t, ok)

	gen, err := cache.Generation(ctx, owner)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, owner, "2024-03-10", 3, gen))
	require.NoError(t, cache.Set(ctx, owner, "2024-03-11", 4, gen))

	days, ok, err := cache.Get(ctx, owner, "2024-03-11")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, days)

	ttl, err := rdb.TTL(ctx, "fittrack::streak::"+owner).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	// one invalidation drops every cached day of the owner
	require.NoError(t, cache.Invalidate(ctx, owner))
	_, ok, err = cache.Get(ctx, owner, "2024-03-10")
	require.NoError(t, err)
	assert.False(t, ok)

	// a streak computed before the invalidation is not written back
	require.ErrorIs(t, cache.Set(ctx, owner, "2024-03-10", 3, gen), streak.ErrGenerationChanged)
	_, ok, err = cache.Get(ctx, owner, "2024-03-10")
	require.NoError(t, err)
	assert.False(t, ok)
}
