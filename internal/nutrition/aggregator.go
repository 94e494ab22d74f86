package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const WeekDays = 7

var ErrReadOnly = errors.New("nutrition days are read-only")

// Aggregator builds weekly summaries. It never writes anything.
type Aggregator struct {
	provider Provider
	loc      *time.Location
	metrics  *metrics.Manager
}

func NewAggregator(provider Provider, loc *time.Location, metricsManager *metrics.Manager) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{
		provider: provider,
		loc:      loc,
		metrics:  metricsManager,
	}
}

func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// AggregateWeek summarizes asOf-6 .. asOf, oldest first. Days that are
// missing or fail to load count as zero days.
func (a *Aggregator) AggregateWeek(ctx context.Context, ownerID string, asOf time.Time) (_ *WeekSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.aggregateWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner id empty", pkg.ErrInvalidArgument)
	}

	last := pkg.StartOfDay(asOf, a.loc)
	first := last.AddDate(0, 0, -(WeekDays - 1))
	span.SetAttributes(attribute.String("asOf", last.Format(pkg.DateLayout)))

	week := &WeekSummary{
		OwnerID: ownerID,
		From:    first.Format(pkg.DateLayout),
		To:      last.Format(pkg.DateLayout),
	}

	// a day failure is recorded in its summary; only cancellation of the
	// caller's context fails the group and stops the remaining fetches
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < WeekDays; i++ {
		day := first.AddDate(0, 0, i)
		g.Go(func() error {
			summary, err := a.summarizeDay(gctx, ownerID, day)
			if err != nil {
				return err
			}
			week.Days[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, d := range week.Days {
		week.Totals = week.Totals.add(d.Summary)
	}
	return week, nil
}

func (a *Aggregator) summarizeDay(ctx context.Context, ownerID string, day time.Time) (DaySummary, error) {
	summary := DaySummary{
		Date:   day.Format(pkg.DateLayout),
		Status: DayStatusOK,
	}

	d, err := a.provider.GetDay(ctx, ownerID, day)
	if err != nil && ctx.Err() != nil {
		return summary, fmt.Errorf("get nutrition day %s: %w", summary.Date, ctx.Err())
	}
	switch {
	case errors.Is(err, pkg.ErrNotFound):
		log.Tracef("no nutrition logged by [%s] on %s", ownerID, summary.Date)
		summary.Status = DayStatusMissing
	case err != nil:
		log.Warnf("get nutrition day %s for [%s]: %s", summary.Date, ownerID, err)
		a.metrics.CounterNutritionFetchFailures.Inc()
		summary.Status = DayStatusUnavailable
	default:
		summary.Summary = d.Summary()
	}
	return summary, nil
}
