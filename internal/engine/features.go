package engine

import (
	"strings"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// FeatureCount is the fixed length of a feature vector.
const FeatureCount = 6

// Feature vector slots, in wire order.
const (
	featHomeGame = iota
	featOpponentStrength
	featRestDays
	featSeasonClutchPct // divided by 100
	featMinutesPerGame  // divided by 48
	featPlayerAdjustment
)

// AdjustmentTable maps lower-cased player names to a clutch adjustment factor
// in [-0.5, 0.5]. Read-only after construction.
type AdjustmentTable map[string]float64

// Lookup returns the adjustment for a player. Unknown names yield 0.0; the
// silent fallback is intentional, not a failure.
func (t AdjustmentTable) Lookup(playerName string) float64 {
	return t[strings.ToLower(playerName)]
}

// DefaultAdjustments returns the built-in demo table of player adjustments.
func DefaultAdjustments() AdjustmentTable {
	return AdjustmentTable{
		"damian lillard":    0.4,
		"lebron james":      0.3,
		"stephen curry":     0.35,
		"kevin durant":      0.3,
		"jimmy butler":      0.25,
		"kyrie irving":      0.2,
		"kawhi leonard":     0.3,
		"paul george":       0.1,
		"james harden":      0.15,
		"russell westbrook": -0.1,
	}
}

// FeatureBuilder converts a (player, context) pair into the fixed-length
// numeric vector consumed by both strategies. Pure: no I/O, deterministic
// given the inputs and the adjustment table.
type FeatureBuilder struct {
	adjustments AdjustmentTable
}

func NewFeatureBuilder(adjustments AdjustmentTable) *FeatureBuilder {
	if adjustments == nil {
		adjustments = DefaultAdjustments()
	}
	return &FeatureBuilder{adjustments: adjustments}
}

// Build produces the feature vector. Missing context fields take their
// documented defaults; season_clutch_pct and minutes_per_game are normalized
// to unit range. No clamping happens here — out-of-range inputs pass through
// (clamping is the caller's responsibility).
func (b *FeatureBuilder) Build(playerName string, game models.GameContext) []float64 {
	home := 0.0
	if game.IsHome() {
		home = 1.0
	}
	return []float64{
		home,
		game.OpponentStrengthValue(),
		float64(game.RestDaysValue()),
		game.SeasonClutchPctValue() / 100,
		game.MinutesPerGameValue() / 48,
		b.adjustments.Lookup(playerName),
	}
}

// defaultFeatureVector is the vector of an entirely defaulted context with an
// unknown player. The trained-model path falls back to the rules over this
// vector (keeping only the real player-adjustment slot) when inference fails.
func defaultFeatureVector() []float64 {
	return []float64{
		0,
		models.DefaultOpponentStrength,
		models.DefaultRestDays,
		models.DefaultSeasonClutchPct / 100,
		models.DefaultMinutesPerGame / 48,
		0,
	}
}
