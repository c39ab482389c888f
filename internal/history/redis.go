package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nbaclutch/clutch-api/internal/models"
)

const defaultHistoryKey = "clutch:predictions:history"

// RedisStore keeps the prediction history in a capped Redis list
// (LPUSH + LTRIM), newest first, shared across API instances.
type RedisStore struct {
	client *redis.Client
	key    string
	cap    int64
}

func NewRedisStore(client *redis.Client, capacity int) *RedisStore {
	if capacity <= 0 {
		capacity = 10
	}
	return &RedisStore{client: client, key: defaultHistoryKey, cap: int64(capacity)}
}

func (s *RedisStore) Append(ctx context.Context, records ...models.PredictionRecord) error {
	if len(records) == 0 {
		return nil
	}
	pipe := s.client.TxPipeline()
	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal history record: %w", err)
		}
		pipe.LPush(ctx, s.key, payload)
	}
	pipe.LTrim(ctx, s.key, 0, s.cap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (s *RedisStore) Recent(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	if limit <= 0 || int64(limit) > s.cap {
		limit = int(s.cap)
	}
	raw, err := s.client.LRange(ctx, s.key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	records := make([]models.PredictionRecord, 0, len(raw))
	for _, item := range raw {
		var rec models.PredictionRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			// Skip malformed entries rather than failing the whole read.
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
