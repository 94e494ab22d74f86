package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const cacheSize = 20 * 1024 * 1024

// CachedProvider keeps fetched days in an in-process cache. Missing days are
// not cached, so a day logged later shows up on the next read.
type CachedProvider struct {
	provider      Provider
	writer        Writer
	cache         *freecache.Cache
	expireSeconds int
}

// NewCachedProvider wraps provider. writer may be nil when days are read-only.
func NewCachedProvider(provider Provider, writer Writer, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		provider:      provider,
		writer:        writer,
		cache:         freecache.NewCache(cacheSize),
		expireSeconds: int(ttl.Seconds()),
	}
}

func dayCacheKey(ownerID, date string) []byte {
	return []byte(fmt.Sprintf("day::%s::%s", ownerID, date))
}

func (p *CachedProvider) GetDay(ctx context.Context, ownerID string, day time.Time) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cachedNutrition.getDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := dayCacheKey(ownerID, day.Format(pkg.DateLayout))
	if dayBytes, err := p.cache.Get(key); err == nil {
		d := &Day{}
		if err := json.Unmarshal(dayBytes, d); err == nil {
			log.Tracef("nutrition day %s found in cache", key)
			return d, nil
		} else {
			log.Errorf("failed to unmarshal cached nutrition day %s: %s", key, err)
		}
	}

	d, err := p.provider.GetDay(ctx, ownerID, day)
	if err != nil {
		return nil, err
	}

	if p.expireSeconds > 0 {
		if dayBytes, err := json.Marshal(d); err != nil {
			log.Errorf("failed to marshal nutrition day %s: %s", key, err)
		} else if err := p.cache.Set(key, dayBytes, p.expireSeconds); err != nil {
			log.Errorf("failed to cache nutrition day %s: %s", key, err)
		}
	}

	return d, nil
}

func (p *CachedProvider) Writable() bool {
	return p.writer != nil
}

func (p *CachedProvider) UpsertDay(ctx context.Context, day Day) error {
	if p.writer == nil {
		return ErrReadOnly
	}
	if err := p.writer.UpsertDay(ctx, day); err != nil {
		return err
	}
	p.cache.Del(dayCacheKey(day.OwnerID, day.Date))
	return nil
}
