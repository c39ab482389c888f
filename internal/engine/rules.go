package engine

import (
	"fmt"
	"math"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// Rule formula constants. Illustrative weights, not fitted values.
const (
	ruleHomeBoost        = 0.1
	ruleOpponentWeight   = 0.15
	ruleRestWeight       = 0.03
	ruleRestBoostCap     = 0.1
	ruleClutchBaseline   = 45.0
	ruleClutchWeight     = 0.01
	ruleOverperformBase  = 0.33
	ruleUnderperformBase = 0.4
)

// ruleStrategy computes the demo heuristic. It is a pure function of the
// feature vector, used whenever no trained model is available.
type ruleStrategy struct{}

func (ruleStrategy) Classify(features []float64) (Classification, error) {
	if len(features) != FeatureCount {
		return Classification{}, fmt.Errorf("rule strategy: expected %d features, got %d", FeatureCount, len(features))
	}

	homeBoost := 0.0
	if features[featHomeGame] != 0 {
		homeBoost = ruleHomeBoost
	}
	opponentPenalty := features[featOpponentStrength] * ruleOpponentWeight
	restBoost := math.Min(features[featRestDays]*ruleRestWeight, ruleRestBoostCap)
	// The clutch term operates on the raw percentage, not the normalized
	// feature, so the feature is scaled back up before the baseline subtract.
	clutchHistory := (features[featSeasonClutchPct]*100 - ruleClutchBaseline) * ruleClutchWeight
	playerFactor := features[featPlayerAdjustment]

	overperform := clamp(ruleOverperformBase+homeBoost-opponentPenalty+restBoost+clutchHistory+playerFactor, 0.10, 0.80)
	underperform := clamp(ruleUnderperformBase-playerFactor-homeBoost+opponentPenalty, 0.10, 0.50)
	expected := 1.0 - overperform - underperform

	total := underperform + expected + overperform
	probs := []float64{underperform / total, expected / total, overperform / total}

	return Classification{
		Index:         argmax(probs),
		Probabilities: probs,
		Method:        models.MethodDemoRules,
	}, nil
}

// argmax returns the index of the maximum value; on exact ties the earlier
// index (canonical category order) wins.
func argmax(values []float64) int {
	idx := 0
	for i, v := range values {
		if v > values[idx] {
			idx = i
		}
	}
	return idx
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
