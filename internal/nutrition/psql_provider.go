package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type PsqlProvider struct {
	db db.Querier
}

func NewPsqlProvider(db db.Querier) *PsqlProvider {
	return &PsqlProvider{
		db: db,
	}
}

func (p *PsqlProvider) GetDay(ctx context.Context, ownerID string, day time.Time) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	date := day.Format(pkg.DateLayout)
	span.SetAttributes(attribute.String("day", date))

	var (
		d        Day
		loggedOn time.Time
		meals    [4][]byte
	)
	err = p.db.QueryRow(
		ctx,
		`SELECT owner_id, day, total_calories, breakfast, lunch, dinner, snacks
			FROM nutrition_day
			WHERE owner_id = $1 AND day = $2::date;`,
		ownerID, date,
	).Scan(&d.OwnerID, &loggedOn, &d.TotalCalories, &meals[0], &meals[1], &meals[2], &meals[3])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("nutrition day %s: %w", date, pkg.ErrNotFound)
		}
		return nil, err
	}

	d.Date = loggedOn.Format(pkg.DateLayout)
	dests := []*[]FoodItem{&d.Breakfast, &d.Lunch, &d.Dinner, &d.Snacks}
	for i, raw := range meals {
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, dests[i]); err != nil {
			return nil, fmt.Errorf("unmarshal meals of %s: %w", date, err)
		}
	}

	return &d, nil
}

// UpsertDay replaces the whole logged day.
func (p *PsqlProvider) UpsertDay(ctx context.Context, day Day) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.upsertDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day.Date))

	var mealsJson [4][]byte
	for i, meal := range day.meals() {
		if meal == nil {
			meal = []FoodItem{}
		}
		if mealsJson[i], err = json.Marshal(meal); err != nil {
			return fmt.Errorf("marshal meal: %w", err)
		}
	}

	_, err = p.db.Exec(
		ctx,
		`INSERT INTO nutrition_day (owner_id, day, total_calories, breakfast, lunch, dinner, snacks, updated_at)
			VALUES ($1, $2::date, $3, $4, $5, $6, $7, NOW())
			ON CONFLICT (owner_id, day) DO UPDATE SET
				total_calories = EXCLUDED.total_calories,
				breakfast = EXCLUDED.breakfast,
				lunch = EXCLUDED.lunch,
				dinner = EXCLUDED.dinner,
				snacks = EXCLUDED.snacks,
				updated_at = NOW();`,
		day.OwnerID, day.Date, day.TotalCalories, mealsJson[0], mealsJson[1], mealsJson[2], mealsJson[3],
	)
	return err
}
