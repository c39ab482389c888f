package engine

import (
	"context"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// Service is the prediction contract consumed by HTTP handlers and the CLI.
// Predict never returns a Go error: failures surface as an error-flavored
// PredictionResult so callers have a single result shape to handle.
type Service interface {
	Predict(ctx context.Context, playerName string, game models.GameContext) models.PredictionResult
	PredictBatch(ctx context.Context, reqs []models.PredictRequest) []models.PredictionResult
	Info() models.ModelInfo
}

// Classification is a raw classifier outcome. Index and Probabilities are
// both defined over the canonical category order (models.Categories).
type Classification struct {
	Index         int
	Probabilities []float64
	Method        string
}

// Strategy turns a feature vector into a classification. One implementation
// wraps the trained classifier, the other computes the demo heuristic. The
// active strategy is chosen once at artifact-load time, not per call.
type Strategy interface {
	Classify(features []float64) (Classification, error)
}
