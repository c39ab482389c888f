// Package history persists recent prediction records for the dashboard.
package history

import (
	"context"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// Store is a capped, newest-first prediction history.
type Store interface {
	// Append records results; older entries beyond the cap are discarded.
	Append(ctx context.Context, records ...models.PredictionRecord) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]models.PredictionRecord, error)
}
