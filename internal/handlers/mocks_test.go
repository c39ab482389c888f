package handlers

import (
	"context"
	"time"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// MockEngine implements engine.Service
type MockEngine struct {
	PredictFunc      func(ctx context.Context, playerName string, game models.GameContext) models.PredictionResult
	PredictBatchFunc func(ctx context.Context, reqs []models.PredictRequest) []models.PredictionResult
	InfoFunc         func() models.ModelInfo
}

func (m *MockEngine) Predict(ctx context.Context, playerName string, game models.GameContext) models.PredictionResult {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, playerName, game)
	}
	return demoResult(playerName)
}

func (m *MockEngine) PredictBatch(ctx context.Context, reqs []models.PredictRequest) []models.PredictionResult {
	if m.PredictBatchFunc != nil {
		return m.PredictBatchFunc(ctx, reqs)
	}
	results := make([]models.PredictionResult, len(reqs))
	for i, req := range reqs {
		results[i] = demoResult(req.Player)
	}
	return results
}

func (m *MockEngine) Info() models.ModelInfo {
	if m.InfoFunc != nil {
		return m.InfoFunc()
	}
	return models.ModelInfo{Categories: models.Categories}
}

func demoResult(playerName string) models.PredictionResult {
	return models.PredictionResult{
		PlayerName: playerName,
		Prediction: string(models.CategoryOverperform),
		Confidence: 0.67,
		Probabilities: map[models.Category]float64{
			models.CategoryUnderperform: 0.10,
			models.CategoryExpected:     0.23,
			models.CategoryOverperform:  0.67,
		},
		Method:      models.MethodDemoRules,
		Explanation: "mock explanation",
		Timestamp:   time.Now(),
	}
}

// MockHistoryQueue implements HistoryQueue
type MockHistoryQueue struct {
	EnqueueFunc func(record models.PredictionRecord) bool
	Enqueued    []models.PredictionRecord
}

func (m *MockHistoryQueue) Enqueue(record models.PredictionRecord) bool {
	m.Enqueued = append(m.Enqueued, record)
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(record)
	}
	return true
}

func (m *MockHistoryQueue) QueueDepth() int { return len(m.Enqueued) }

// MockHistoryStore implements history.Store
type MockHistoryStore struct {
	AppendFunc func(ctx context.Context, records ...models.PredictionRecord) error
	RecentFunc func(ctx context.Context, limit int) ([]models.PredictionRecord, error)
}

func (m *MockHistoryStore) Append(ctx context.Context, records ...models.PredictionRecord) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, records...)
	}
	return nil
}

func (m *MockHistoryStore) Recent(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	return nil, nil
}
