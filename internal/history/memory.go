package history

import (
	"context"
	"sync"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// MemoryStore keeps history in process memory. Used when no Redis URL is
// configured, and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	cap     int
	records []models.PredictionRecord // newest first
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 10
	}
	return &MemoryStore{cap: capacity}
}

func (s *MemoryStore) Append(ctx context.Context, records ...models.PredictionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		s.records = append([]models.PredictionRecord{rec}, s.records...)
	}
	if len(s.records) > s.cap {
		s.records = s.records[:s.cap]
	}
	return nil
}

func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}
	out := make([]models.PredictionRecord, limit)
	copy(out, s.records[:limit])
	return out, nil
}
