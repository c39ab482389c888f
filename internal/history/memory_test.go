package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/nbaclutch/clutch-api/internal/models"
)

func record(id string) models.PredictionRecord {
	return models.PredictionRecord{
		ID: id,
		PredictionResult: models.PredictionResult{
			PlayerName: "Test Player",
			Prediction: string(models.CategoryExpected),
			Method:     models.MethodDemoRules,
		},
	}
}

func TestMemoryStoreNewestFirst(t *testing.T) {
	s := NewMemoryStore(10)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.Append(ctx, record(fmt.Sprintf("rec-%d", i))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].ID != "rec-2" || got[2].ID != "rec-0" {
		t.Errorf("expected newest first, got %v then %v", got[0].ID, got[2].ID)
	}
}

func TestMemoryStoreCap(t *testing.T) {
	s := NewMemoryStore(10)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		if err := s.Append(ctx, record(fmt.Sprintf("rec-%d", i))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.Recent(ctx, 100)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected cap of 10, got %d", len(got))
	}
	if got[0].ID != "rec-14" {
		t.Errorf("expected newest record first, got %v", got[0].ID)
	}
}

func TestMemoryStoreLimit(t *testing.T) {
	s := NewMemoryStore(10)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.Append(ctx, record(fmt.Sprintf("rec-%d", i))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "rec-4" || got[1].ID != "rec-3" {
		t.Errorf("unexpected order: %v, %v", got[0].ID, got[1].ID)
	}
}
