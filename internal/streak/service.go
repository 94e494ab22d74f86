package streak

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=streak_test

type sessionLister interface {
	ListSessions(ctx context.Context, ownerID string, params workout.ListSessionsParams) ([]workout.Session, error)
}

type Cache interface {
	Get(ctx context.Context, ownerID, day string) (int, bool, error)
	Generation(ctx context.Context, ownerID string) (int64, error)
	// Set must not write when the owner's generation moved past the given one.
	Set(ctx context.Context, ownerID, day string, streak int, generation int64) error
	Invalidate(ctx context.Context, ownerID string) error
}

type Result struct {
	OwnerID string `json:"ownerId"`
	AsOf    string `json:"asOf"`
	Days    int    `json:"days"`
}

type Service struct {
	sessions sessionLister
	// cache is optional, failures are logged and the streak is recomputed
	cache   Cache
	loc     *time.Location
	metrics *metrics.Manager
}

func NewService(
	sessions sessionLister,
	cache Cache,
	loc *time.Location,
	metricsManager *metrics.Manager,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		sessions: sessions,
		cache:    cache,
		loc:      loc,
		metrics:  metricsManager,
	}
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// ComputeStreak loads the owner's completed sessions of the last year and
// derives the streak as of the given day.
func (s *Service) ComputeStreak(ctx context.Context, ownerID string, asOf time.Time) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.streak.compute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner id empty", workout.ErrInvalidArgument)
	}

	day := pkg.StartOfDay(asOf, s.loc)
	dayStr := day.Format(pkg.DateLayout)
	span.SetAttributes(attribute.String("asOf", dayStr))

	// the generation is read before listing; a completion landing after this
	// point makes the write below a no-op
	cacheable := false
	var generation int64
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, ownerID, dayStr)
		switch {
		case err != nil:
			log.Warnf("streak cache get [%s]: %s", ownerID, err)
		case ok:
			s.metrics.CounterStreakCacheHits.Inc()
			return &Result{OwnerID: ownerID, AsOf: dayStr, Days: cached}, nil
		}
		s.metrics.CounterStreakCacheMisses.Inc()

		generation, err = s.cache.Generation(ctx, ownerID)
		if err != nil {
			log.Warnf("streak cache generation [%s]: %s", ownerID, err)
		} else {
			cacheable = true
		}
	}

	// one extra day for the anchor on yesterday
	since := day.AddDate(0, 0, -(MaxDays + 1))
	sessions, err := s.sessions.ListSessions(ctx, ownerID, workout.ListSessionsParams{
		OnlyCompleted: true,
		Since:         &since,
	})
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}

	days := Compute(sessions, day, s.loc)
	log.Debugf("streak [%s] as of %s: %d days (%d sessions)", ownerID, dayStr, days, len(sessions))

	if cacheable {
		err := s.cache.Set(ctx, ownerID, dayStr, days, generation)
		switch {
		case errors.Is(err, ErrGenerationChanged):
			log.Debugf("streak cache set [%s]: skipped, invalidated meanwhile", ownerID)
		case err != nil:
			log.Warnf("streak cache set [%s]: %s", ownerID, err)
		}
	}

	return &Result{OwnerID: ownerID, AsOf: dayStr, Days: days}, nil
}

// HandleSessionCompleted drops cached streaks of the session owner.
// Its signature matches workout.CompletionHook.
func (s *Service) HandleSessionCompleted(ctx context.Context, session workout.Session) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, session.OwnerID); err != nil {
		log.Errorf("invalidate streak cache [%s]: %s", session.OwnerID, err)
	}
}
