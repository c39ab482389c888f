package engine

import (
	"math"
	"testing"

	"github.com/nbaclutch/clutch-api/internal/models"
)

const floatTolerance = 1e-9

func floatsEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestBuildDefaults(t *testing.T) {
	b := NewFeatureBuilder(nil)

	got := b.Build("Somebody New", models.GameContext{})
	want := []float64{0, 0.5, 1, 0.45, 30.0 / 48, 0}

	if len(got) != FeatureCount {
		t.Fatalf("expected %d features, got %d", FeatureCount, len(got))
	}
	for i := range want {
		if !floatsEqual(got[i], want[i]) {
			t.Errorf("feature %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestBuildNormalization(t *testing.T) {
	b := NewFeatureBuilder(nil)

	game := models.NewGameContext(true, 0.8, 3, 52.0, 36.0)
	got := b.Build("LeBron James", game)
	want := []float64{1, 0.8, 3, 0.52, 36.0 / 48, 0.3}

	for i := range want {
		if !floatsEqual(got[i], want[i]) {
			t.Errorf("feature %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestBuildNoClamping(t *testing.T) {
	b := NewFeatureBuilder(nil)

	// Out-of-range inputs pass through normalized but unclamped.
	game := models.NewGameContext(false, 1.5, 10, 150.0, 60.0)
	got := b.Build("nobody", game)

	if !floatsEqual(got[featOpponentStrength], 1.5) {
		t.Errorf("opponent strength should pass through, got %v", got[featOpponentStrength])
	}
	if !floatsEqual(got[featSeasonClutchPct], 1.5) {
		t.Errorf("clutch pct should normalize without clamping, got %v", got[featSeasonClutchPct])
	}
	if !floatsEqual(got[featMinutesPerGame], 1.25) {
		t.Errorf("minutes should normalize without clamping, got %v", got[featMinutesPerGame])
	}
}

func TestAdjustmentLookup(t *testing.T) {
	table := DefaultAdjustments()

	tests := []struct {
		name   string
		player string
		want   float64
	}{
		{"Known player", "damian lillard", 0.4},
		{"Case insensitive", "Damian Lillard", 0.4},
		{"Known player mixed case", "LeBron James", 0.3},
		{"Negative adjustment", "Russell Westbrook", -0.1},
		{"Unknown player", "Somebody New", 0.0},
		{"Empty name", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Lookup(tt.player); !floatsEqual(got, tt.want) {
				t.Errorf("Lookup(%q) = %v, want %v", tt.player, got, tt.want)
			}
		})
	}
}
