package engine

import (
	"fmt"
	"math"
)

// Training hyperparameters for the demo model. Tuned for the synthetic data
// the modelgen tool produces, not for real game logs.
const (
	trainIterations   = 400
	trainLearningRate = 0.15
)

// TrainSoftmax fits a softmax classifier by gradient descent on cross-entropy
// loss. Labels are class indexes into the canonical category order.
func TrainSoftmax(samples [][]float64, labels []int, numClasses int) (*SoftmaxClassifier, error) {
	if len(samples) == 0 || len(samples) != len(labels) {
		return nil, fmt.Errorf("train: %d samples, %d labels", len(samples), len(labels))
	}
	numFeatures := len(samples[0])
	for i, s := range samples {
		if len(s) != numFeatures {
			return nil, fmt.Errorf("train: sample %d has %d features, want %d", i, len(s), numFeatures)
		}
	}
	for i, y := range labels {
		if y < 0 || y >= numClasses {
			return nil, fmt.Errorf("train: label %d out of range at sample %d", y, i)
		}
	}

	clf := &SoftmaxClassifier{
		Weights: make([][]float64, numClasses),
		Bias:    make([]float64, numClasses),
	}
	for k := range clf.Weights {
		clf.Weights[k] = make([]float64, numFeatures)
	}

	n := float64(len(samples))
	for iter := 0; iter < trainIterations; iter++ {
		for i, x := range samples {
			probs, err := clf.PredictProba(x)
			if err != nil {
				return nil, err
			}
			// Gradient of cross-entropy: (p_k - 1{y=k}) * x
			for k := range clf.Weights {
				grad := probs[k]
				if labels[i] == k {
					grad -= 1
				}
				step := trainLearningRate * grad / n
				for j := range clf.Weights[k] {
					clf.Weights[k][j] -= step * x[j]
				}
				clf.Bias[k] -= step
			}
		}
	}
	return clf, nil
}

// FitScaler computes per-feature mean and standard deviation over the
// training samples.
func FitScaler(samples [][]float64) (*StandardScaler, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("fit scaler: no samples")
	}
	numFeatures := len(samples[0])
	mean := make([]float64, numFeatures)
	for _, s := range samples {
		if len(s) != numFeatures {
			return nil, fmt.Errorf("fit scaler: ragged samples")
		}
		for j, v := range s {
			mean[j] += v
		}
	}
	n := float64(len(samples))
	for j := range mean {
		mean[j] /= n
	}
	scale := make([]float64, numFeatures)
	for _, s := range samples {
		for j, v := range s {
			d := v - mean[j]
			scale[j] += d * d
		}
	}
	for j := range scale {
		scale[j] = math.Sqrt(scale[j] / n)
	}
	return &StandardScaler{Mean: mean, Scale: scale}, nil
}

// Accuracy scores the classifier against labeled samples. Used by modelgen to
// report training fit.
func Accuracy(clf *SoftmaxClassifier, samples [][]float64, labels []int) (float64, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("accuracy: no samples")
	}
	correct := 0
	for i, x := range samples {
		idx, err := clf.Predict(x)
		if err != nil {
			return 0, err
		}
		if idx == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(samples)), nil
}
