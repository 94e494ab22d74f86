package streak

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const (
	cacheKeyPrefix      = "fittrack::streak::"
	generationKeyPrefix = "fittrack::streak-gen::"
)

// ErrGenerationChanged is returned by Set when the owner's cache was
// invalidated after the generation was read. Nothing is written then.
var ErrGenerationChanged = errors.New("streak cache generation changed")

// RedisCache keeps computed streaks in one redis hash per owner, keyed by the
// asOf date. Completing a session drops the whole hash and bumps the owner's
// generation counter, so a streak computed before the completion is never
// written back.
type RedisCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisCache(redisClient *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func cacheKey(ownerID string) string {
	return cacheKeyPrefix + ownerID
}

func generationKey(ownerID string) string {
	return generationKeyPrefix + ownerID
}

func (c *RedisCache) Get(ctx context.Context, ownerID, day string) (_ int, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.streak.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := c.redisClient.HGet(ctx, cacheKey(ownerID), day).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	streak, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("malformed cached streak %q: %w", val, err)
	}
	return streak, true, nil
}

// Generation returns the owner's invalidation counter, 0 if never invalidated.
func (c *RedisCache) Generation(ctx context.Context, ownerID string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.streak.generation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	gen, err := c.redisClient.Get(ctx, generationKey(ownerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores the streak only if the owner's generation still equals the given
// one. The check and the write run in one WATCH/MULTI transaction.
func (c *RedisCache) Set(ctx context.Context, ownerID, day string, streak int, generation int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.streak.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := cacheKey(ownerID)
	genKey := generationKey(ownerID)
	err = c.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return ErrGenerationChanged
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, day, streak)
			if c.ttl > 0 {
				pipe.Expire(ctx, key, c.ttl)
			}
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrGenerationChanged
	}
	return err
}

func (c *RedisCache) Invalidate(ctx context.Context, ownerID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.streak.invalidate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(ownerID))
		pipe.Del(ctx, cacheKey(ownerID))
		return nil
	})
	return err
}
