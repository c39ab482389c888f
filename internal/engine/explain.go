package engine

import (
	"fmt"
	"strings"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// Explanation thresholds. Strict comparisons everywhere except the
// well-rested cutoff, which is inclusive.
const (
	explainStrongOpponent = 0.7
	explainWeakOpponent   = 0.3
	explainWellRested     = 3
	explainStrongClutch   = 50.0
	explainWeakClutch     = 40.0
)

// explain renders the natural-language sentence attached to every prediction.
// Deterministic given (player, context, result).
func explain(playerName string, game models.GameContext, result models.PredictionResult) string {
	factors := make([]string, 0, 4)

	if game.IsHome() {
		factors = append(factors, "home court advantage")
	} else {
		factors = append(factors, "playing on the road")
	}

	opp := game.OpponentStrengthValue()
	if opp > explainStrongOpponent {
		factors = append(factors, "facing a strong opponent")
	} else if opp < explainWeakOpponent {
		factors = append(factors, "facing a weaker opponent")
	}

	rest := game.RestDaysValue()
	if rest >= explainWellRested {
		factors = append(factors, "well-rested")
	} else if rest == 0 {
		factors = append(factors, "playing back-to-back")
	}

	clutch := game.SeasonClutchPctValue()
	if clutch > explainStrongClutch {
		factors = append(factors, "strong clutch history")
	} else if clutch < explainWeakClutch {
		factors = append(factors, "struggles in clutch situations")
	}

	factorsText := "standard game conditions"
	if len(factors) > 0 {
		factorsText = strings.Join(factors, ", ")
	}

	return fmt.Sprintf("%s is predicted to %s (confidence: %.1f%%) considering %s.",
		playerName, strings.ToLower(result.Prediction), result.Confidence*100, factorsText)
}
