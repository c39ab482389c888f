package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/nbaclutch/clutch-api/internal/models"
)

// SoftmaxClassifier is a multinomial logistic regression over the canonical
// categories. It exposes the generic classifier contract the engine relies
// on: a class-index prediction and a probability distribution.
type SoftmaxClassifier struct {
	Weights [][]float64 // [class][feature]
	Bias    []float64   // [class]
}

func (c *SoftmaxClassifier) NumClasses() int { return len(c.Weights) }

// PredictProba returns the per-class probability distribution for one
// feature vector. Errors on shape mismatch rather than guessing.
func (c *SoftmaxClassifier) PredictProba(features []float64) ([]float64, error) {
	if len(c.Weights) == 0 || len(c.Bias) != len(c.Weights) {
		return nil, fmt.Errorf("classifier: malformed weights (%d classes, %d biases)", len(c.Weights), len(c.Bias))
	}
	logits := make([]float64, len(c.Weights))
	for k, row := range c.Weights {
		if len(row) != len(features) {
			return nil, fmt.Errorf("classifier: class %d expects %d features, got %d", k, len(row), len(features))
		}
		z := c.Bias[k]
		for j, w := range row {
			z += w * features[j]
		}
		logits[k] = z
	}
	// Softmax with max subtraction for numerical stability.
	maxLogit := logits[argmax(logits)]
	var sum float64
	probs := make([]float64, len(logits))
	for k, z := range logits {
		probs[k] = math.Exp(z - maxLogit)
		sum += probs[k]
	}
	for k := range probs {
		probs[k] /= sum
	}
	return probs, nil
}

// Predict returns the class index with maximum probability.
func (c *SoftmaxClassifier) Predict(features []float64) (int, error) {
	probs, err := c.PredictProba(features)
	if err != nil {
		return 0, err
	}
	return argmax(probs), nil
}

// StandardScaler standardizes features to zero mean and unit variance, the
// same transform the demo model was trained with.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// Transform standardizes one feature vector. Zero-variance features are
// centered but not scaled.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) || len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("scaler: expected %d features, got %d", len(s.Mean), len(features))
	}
	out := make([]float64, len(features))
	for i, v := range features {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}

// modelStrategy runs the trained classifier, optionally behind the scaler.
// Any inference failure degrades gracefully to the rule formula over a
// defaulted context (keeping the real player-adjustment slot); it never
// surfaces an error to the engine.
type modelStrategy struct {
	clf    *SoftmaxClassifier
	scaler *StandardScaler
	rules  ruleStrategy
	logger *zap.SugaredLogger
}

func (m *modelStrategy) Classify(features []float64) (Classification, error) {
	cls, err := m.infer(features)
	if err != nil {
		m.logger.Warnw("Model inference failed, falling back to rules", "error", err)
		fallback := defaultFeatureVector()
		if len(features) == FeatureCount {
			fallback[featPlayerAdjustment] = features[featPlayerAdjustment]
		}
		return m.rules.Classify(fallback)
	}
	return cls, nil
}

func (m *modelStrategy) infer(features []float64) (Classification, error) {
	scaled := features
	if m.scaler != nil {
		var err error
		scaled, err = m.scaler.Transform(features)
		if err != nil {
			return Classification{}, err
		}
	}
	idx, err := m.clf.Predict(scaled)
	if err != nil {
		return Classification{}, err
	}
	probs, err := m.clf.PredictProba(scaled)
	if err != nil {
		return Classification{}, err
	}
	if idx < 0 || idx >= len(models.Categories) || len(probs) != len(models.Categories) {
		return Classification{}, fmt.Errorf("classifier: %d classes, want %d", len(probs), len(models.Categories))
	}
	return Classification{
		Index:         idx,
		Probabilities: probs,
		Method:        models.MethodTrainedModel,
	}, nil
}
