package nutrition

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=provider_mocks_test.go -package=nutrition_test

// Provider returns the logged day, or an error wrapping pkg.ErrNotFound
// when nothing was logged for that date.
type Provider interface {
	GetDay(ctx context.Context, ownerID string, day time.Time) (*Day, error)
}

type Writer interface {
	UpsertDay(ctx context.Context, day Day) error
}
