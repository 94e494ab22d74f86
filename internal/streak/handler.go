package streak

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=streak_test

type streakService interface {
	ComputeStreak(ctx context.Context, ownerID string, asOf time.Time) (*Result, error)
	Location() *time.Location
}

type Handler struct {
	service streakService
}

func NewHandler(service streakService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleGet serves the streak, asOf defaults to today.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streak.get")
	defer span.End()

	asOf, err := pkg.ParseDate(r.URL.Query().Get("asOf"), handler.service.Location())
	if err != nil {
		http.Error(w, "error, invalid asOf date", http.StatusBadRequest)
		return
	}

	result, err := handler.service.ComputeStreak(ctx, pkg.OwnerID(r), asOf)
	if err != nil {
		pkg.WriteError(w, "compute streak", err)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}
