package models

import "time"

// Category is a clutch performance label.
type Category string

const (
	CategoryUnderperform Category = "Underperform"
	CategoryExpected     Category = "Expected"
	CategoryOverperform  Category = "Overperform"
)

// Categories is the canonical category order. Classifier class indexes and
// argmax tie-breaking are both defined against this ordering.
var Categories = []Category{CategoryUnderperform, CategoryExpected, CategoryOverperform}

// Prediction methods.
const (
	MethodTrainedModel = "trained_model"
	MethodDemoRules    = "demo_rules"
	MethodError        = "error"
)

// PredictionError is the sentinel prediction value of an error result.
const PredictionError = "Error"

// PredictionResult is the outcome of a single prediction call. It is created
// fresh per call and never mutated afterwards. A failed prediction is still a
// PredictionResult (method "error"), never a returned Go error.
type PredictionResult struct {
	PlayerName    string               `json:"player_name"`
	Prediction    string               `json:"prediction"`
	Confidence    float64              `json:"confidence"`
	Probabilities map[Category]float64 `json:"probabilities"`
	Method        string               `json:"method"`
	Explanation   string               `json:"explanation"`
	Timestamp     time.Time            `json:"timestamp"`
}

// IsError reports whether the result is the error sentinel.
func (r PredictionResult) IsError() bool {
	return r.Method == MethodError
}

// PredictionRecord is a history entry: a result plus the context it was
// produced from and a unique ID for the dashboard.
type PredictionRecord struct {
	ID      string      `json:"id"`
	Context GameContext `json:"game_context"`
	PredictionResult
}

// ModelInfo describes the state of the loaded model artifacts.
type ModelInfo struct {
	ModelLoaded       bool               `json:"model_loaded"`
	ScalerLoaded      bool               `json:"scaler_loaded"`
	Categories        []Category         `json:"categories"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
	ModelPath         string             `json:"model_path"`
}
