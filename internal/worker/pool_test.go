package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nbaclutch/clutch-api/internal/history"
	"github.com/nbaclutch/clutch-api/internal/models"
)

func record(id string) models.PredictionRecord {
	return models.PredictionRecord{
		ID: id,
		PredictionResult: models.PredictionResult{
			PlayerName: "Test Player",
			Prediction: string(models.CategoryOverperform),
			Method:     models.MethodDemoRules,
		},
	}
}

func TestEnqueueFull(t *testing.T) {
	pool := NewPool(PoolConfig{
		QueueSize: 1,
		Store:     history.NewMemoryStore(10),
		Logger:    zap.NewNop(),
	})
	// Not started: nothing drains the queue.

	if !pool.Enqueue(record("first")) {
		t.Fatal("failed to enqueue first record")
	}

	start := time.Now()
	enqueued := pool.Enqueue(record("second"))
	duration := time.Since(start)

	if enqueued {
		t.Error("Enqueue should have returned false when queue is full")
	}
	if duration > 10*time.Millisecond {
		t.Errorf("Enqueue took too long (%v), expected immediate return", duration)
	}
	if pool.QueueDepth() != 1 {
		t.Errorf("expected queue depth 1, got %d", pool.QueueDepth())
	}
}

func TestStopFlushesBufferedRecords(t *testing.T) {
	store := history.NewMemoryStore(50)
	pool := NewPool(PoolConfig{
		WorkerCount:   1,
		QueueSize:     16,
		BatchSize:     8,
		FlushInterval: time.Hour, // force the shutdown flush path
		Store:         store,
		Logger:        zap.NewNop(),
	})
	pool.Start(context.Background())

	for i := 0; i < 3; i++ {
		if !pool.Enqueue(record(fmt.Sprintf("rec-%d", i))) {
			t.Fatalf("failed to enqueue record %d", i)
		}
	}
	pool.Stop()

	got, err := store.Recent(context.Background(), 50)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 records flushed on stop, got %d", len(got))
	}
}

func TestBatchSizeTriggersFlush(t *testing.T) {
	store := history.NewMemoryStore(50)
	pool := NewPool(PoolConfig{
		WorkerCount:   1,
		QueueSize:     16,
		BatchSize:     2,
		FlushInterval: time.Hour,
		Store:         store,
		Logger:        zap.NewNop(),
	})
	pool.Start(context.Background())
	defer pool.Stop()

	for i := 0; i < 4; i++ {
		if !pool.Enqueue(record(fmt.Sprintf("rec-%d", i))) {
			t.Fatalf("failed to enqueue record %d", i)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got, err := store.Recent(context.Background(), 50)
		if err != nil {
			t.Fatalf("recent: %v", err)
		}
		if len(got) >= 4 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("records were not flushed by batch size within deadline")
}
