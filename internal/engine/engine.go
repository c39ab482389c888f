// Package engine implements the clutch performance prediction engine:
// feature construction, dual-path prediction (trained model with rule-based
// fallback), and explanation generation.
package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// batchParallelism bounds the fan-out of PredictBatch. Entries are
// independent, so parallel evaluation only has to preserve output order.
const batchParallelism = 8

// featureImportance is the illustrative importance breakdown reported by
// ModelInfo. Display-only; the rule formula does not consume it.
var featureImportance = map[string]float64{
	"home_game":         0.15,
	"opponent_strength": 0.25,
	"rest_days":         0.10,
	"season_clutch_pct": 0.30,
	"minutes_per_game":  0.20,
}

// Config configures an Engine.
type Config struct {
	// ModelDir is the directory holding the gob model artifacts.
	ModelDir string
	// Adjustments overrides the player adjustment table; nil uses the default.
	Adjustments AdjustmentTable
	Logger      *zap.Logger
}

// Engine is the prediction service. The strategy is written once during
// LoadArtifacts and only read afterwards, so concurrent Predict calls need no
// locking as long as loading completes first.
type Engine struct {
	modelDir     string
	features     *FeatureBuilder
	strategy     Strategy
	modelLoaded  bool
	scalerLoaded bool
	logger       *zap.SugaredLogger
}

var _ Service = (*Engine)(nil)

// New creates an engine in rule-based (demo) mode. Call LoadArtifacts to
// switch to the trained model when artifacts are available.
func New(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Engine{
		modelDir: cfg.ModelDir,
		features: NewFeatureBuilder(cfg.Adjustments),
		strategy: ruleStrategy{},
		logger:   cfg.Logger.Sugar(),
	}
}

// LoadArtifacts loads the classifier and feature scaler from the model
// directory and reports whether a trained model is now active. Missing or
// unreadable artifacts are not fatal: the engine stays in demo mode.
func (e *Engine) LoadArtifacts() bool {
	clf, err := LoadClassifier(e.modelDir)
	if err != nil {
		e.logger.Warnw("Failed to load classifier, staying in demo mode", "dir", e.modelDir, "error", err)
		return false
	}
	if clf == nil {
		e.logger.Infow("No classifier artifact found, using demo rules", "dir", e.modelDir)
		return false
	}

	scaler, err := LoadScaler(e.modelDir)
	if err != nil {
		e.logger.Warnw("Failed to load feature scaler, proceeding without scaling", "dir", e.modelDir, "error", err)
		scaler = nil
	}

	e.strategy = &modelStrategy{clf: clf, scaler: scaler, logger: e.logger}
	e.modelLoaded = true
	e.scalerLoaded = scaler != nil
	e.logger.Infow("Model artifacts loaded",
		"dir", e.modelDir,
		"classes", clf.NumClasses(),
		"scaler", e.scalerLoaded,
	)
	return true
}

// Predict generates a clutch performance prediction for one player in one
// game context. It never returns an error: any internal failure yields an
// error-flavored result with zeroed probabilities.
func (e *Engine) Predict(ctx context.Context, playerName string, game models.GameContext) models.PredictionResult {
	result, err := e.predict(playerName, game)
	if err != nil {
		e.logger.Errorw("Prediction failed", "player", playerName, "error", err)
		return e.errorResult(playerName, err)
	}
	e.logger.Debugw("Prediction generated", "player", playerName, "prediction", result.Prediction, "method", result.Method)
	return result
}

func (e *Engine) predict(playerName string, game models.GameContext) (result models.PredictionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("prediction panicked: %v", r)
		}
	}()

	features := e.features.Build(playerName, game)
	cls, err := e.strategy.Classify(features)
	if err != nil {
		return models.PredictionResult{}, err
	}
	if cls.Index < 0 || cls.Index >= len(models.Categories) || len(cls.Probabilities) != len(models.Categories) {
		return models.PredictionResult{}, fmt.Errorf("strategy returned malformed classification (index %d, %d probabilities)", cls.Index, len(cls.Probabilities))
	}

	probs := make(map[models.Category]float64, len(models.Categories))
	for i, cat := range models.Categories {
		probs[cat] = cls.Probabilities[i]
	}

	result = models.PredictionResult{
		PlayerName:    playerName,
		Prediction:    string(models.Categories[cls.Index]),
		Confidence:    cls.Probabilities[argmax(cls.Probabilities)],
		Probabilities: probs,
		Method:        cls.Method,
		Timestamp:     time.Now(),
	}
	result.Explanation = explain(playerName, game, result)
	return result, nil
}

// PredictBatch evaluates independent predictions concurrently, preserving
// input order in the output. Individual failures produce error results, never
// abort the batch.
func (e *Engine) PredictBatch(ctx context.Context, reqs []models.PredictRequest) []models.PredictionResult {
	results := make([]models.PredictionResult, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchParallelism)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			results[i] = e.Predict(ctx, req.Player, req.Context)
			return nil
		})
	}
	g.Wait() // workers never return errors

	e.logger.Infow("Batch predictions generated", "count", len(results))
	return results
}

// Info reports the state of the loaded artifacts.
func (e *Engine) Info() models.ModelInfo {
	imp := make(map[string]float64, len(featureImportance))
	for k, v := range featureImportance {
		imp[k] = v
	}
	return models.ModelInfo{
		ModelLoaded:       e.modelLoaded,
		ScalerLoaded:      e.scalerLoaded,
		Categories:        models.Categories,
		FeatureImportance: imp,
		ModelPath:         e.modelDir,
	}
}

func (e *Engine) errorResult(playerName string, cause error) models.PredictionResult {
	probs := make(map[models.Category]float64, len(models.Categories))
	for _, cat := range models.Categories {
		probs[cat] = 0.0
	}
	return models.PredictionResult{
		PlayerName:    playerName,
		Prediction:    models.PredictionError,
		Confidence:    0.0,
		Probabilities: probs,
		Method:        models.MethodError,
		Explanation:   fmt.Sprintf("Unable to generate prediction: %v", cause),
		Timestamp:     time.Now(),
	}
}
