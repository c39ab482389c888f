// Command predict generates a clutch performance prediction from the
// command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/nbaclutch/clutch-api/internal/engine"
	"github.com/nbaclutch/clutch-api/internal/models"
)

// cliOutput is the structured output shape of -json mode.
type cliOutput struct {
	Player        string                      `json:"player"`
	Prediction    string                      `json:"prediction"`
	Confidence    float64                     `json:"confidence"`
	Probabilities map[models.Category]float64 `json:"probabilities"`
	GameContext   map[string]interface{}      `json:"game_context"`
	Method        string                      `json:"method"`
	Explanation   string                      `json:"explanation"`
	Timestamp     time.Time                   `json:"timestamp"`
}

func main() {
	player := flag.String("player", "LeBron James", "Player name for prediction")
	home := flag.Bool("home", false, "Home game (default: away)")
	oppStrength := flag.Float64("opponent-strength", 0.6, "Opponent strength rating (0-1)")
	restDays := flag.Int("rest-days", 1, "Days since last game")
	clutchPct := flag.Float64("clutch-pct", 45.0, "Season clutch shooting percentage (0-100)")
	minutes := flag.Float64("minutes", 32.0, "Average minutes per game (0-48)")
	modelDir := flag.String("model-dir", "models/trained_models", "Directory containing model artifacts")
	jsonOut := flag.Bool("json", false, "Emit structured JSON instead of human-readable output")
	flag.Parse()

	// The engine does not validate ranges; clamp user input here.
	opp := clampFloat(*oppStrength, 0, 1)
	rest := *restDays
	if rest < 0 {
		rest = 0
	}
	clutch := clampFloat(*clutchPct, 0, 100)
	mins := clampFloat(*minutes, 0, 48)

	logger := zap.NewNop()
	if !*jsonOut {
		logger = zap.Must(zap.NewDevelopment())
	}
	defer logger.Sync()

	eng := engine.New(engine.Config{ModelDir: *modelDir, Logger: logger})
	loaded := eng.LoadArtifacts()

	game := models.NewGameContext(*home, opp, rest, clutch, mins)
	result := eng.Predict(context.Background(), *player, game)

	if *jsonOut {
		out := cliOutput{
			Player:        result.PlayerName,
			Prediction:    result.Prediction,
			Confidence:    result.Confidence,
			Probabilities: result.Probabilities,
			GameContext: map[string]interface{}{
				"home_game":         *home,
				"opponent_strength": opp,
				"rest_days":         rest,
				"season_clutch_pct": clutch,
				"minutes_per_game":  mins,
			},
			Method:      result.Method,
			Explanation: result.Explanation,
			Timestamp:   result.Timestamp,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	mode := "demo rules"
	if loaded {
		mode = "trained model"
	}
	fmt.Printf("NBA Clutch Factor - Predicting %s (%s)\n", *player, mode)
	fmt.Println("==================================================")
	fmt.Printf("Prediction: %s\n", result.Prediction)
	fmt.Printf("Confidence: %.1f%%\n", result.Confidence*100)
	fmt.Println("\nProbability breakdown:")
	for _, cat := range models.Categories {
		fmt.Printf("  %-12s %.1f%%\n", cat, result.Probabilities[cat]*100)
	}
	fmt.Println("\nGame context:")
	fmt.Printf("  Home Game:         %v\n", *home)
	fmt.Printf("  Opponent Strength: %.2f\n", opp)
	fmt.Printf("  Rest Days:         %d\n", rest)
	fmt.Printf("  Season Clutch %%:   %.1f\n", clutch)
	fmt.Printf("  Minutes per Game:  %.1f\n", mins)
	fmt.Printf("\n%s\n", result.Explanation)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
