package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type weekAggregator interface {
	AggregateWeek(ctx context.Context, ownerID string, asOf time.Time) (*WeekSummary, error)
	Location() *time.Location
}

// UpsertDayRequest is the body of a day upsert, the date comes from the path.
type UpsertDayRequest struct {
	TotalCalories float64    `json:"totalCalories"`
	Breakfast     []FoodItem `json:"breakfast"`
	Lunch         []FoodItem `json:"lunch"`
	Dinner        []FoodItem `json:"dinner"`
	Snacks        []FoodItem `json:"snacks"`
}

type Handler struct {
	aggregator weekAggregator
	writer     Writer
}

// NewHandler creates the nutrition handler. A nil writer disables day upserts.
func NewHandler(aggregator weekAggregator, writer Writer) *Handler {
	return &Handler{
		aggregator: aggregator,
		writer:     writer,
	}
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.week")
	defer span.End()

	asOf, err := pkg.ParseDate(r.URL.Query().Get("asOf"), handler.aggregator.Location())
	if err != nil {
		http.Error(w, "error, invalid asOf date", http.StatusBadRequest)
		return
	}

	week, err := handler.aggregator.AggregateWeek(ctx, pkg.OwnerID(r), asOf)
	if err != nil {
		pkg.WriteError(w, "aggregate week", err)
		return
	}
	pkg.WriteJSON(w, week, http.StatusOK)
}

func (handler *Handler) HandleUpsertDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.upsertDay")
	defer span.End()

	if handler.writer == nil {
		http.Error(w, "error, nutrition days are read-only", http.StatusNotImplemented)
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "error, content type must be json", http.StatusBadRequest)
		return
	}

	ownerID := pkg.OwnerID(r)
	if ownerID == "" {
		http.Error(w, "error, owner id missing", http.StatusBadRequest)
		return
	}

	date := mux.Vars(r)["date"]
	day, err := time.Parse(pkg.DateLayout, date)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	reqBytes, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error, failed to read request body", http.StatusBadRequest)
		return
	}
	var req UpsertDayRequest
	if err := json.Unmarshal(reqBytes, &req); err != nil {
		http.Error(w, "error, invalid json", http.StatusBadRequest)
		return
	}

	nd := Day{
		OwnerID:       ownerID,
		Date:          day.Format(pkg.DateLayout),
		TotalCalories: req.TotalCalories,
		Breakfast:     req.Breakfast,
		Lunch:         req.Lunch,
		Dinner:        req.Dinner,
		Snacks:        req.Snacks,
	}
	if err := handler.writer.UpsertDay(ctx, nd); err != nil {
		if errors.Is(err, ErrReadOnly) {
			http.Error(w, "error, nutrition days are read-only", http.StatusNotImplemented)
			return
		}
		pkg.WriteError(w, "upsert nutrition day", err)
		return
	}
	pkg.WriteJSON(w, nd, http.StatusOK)
}
