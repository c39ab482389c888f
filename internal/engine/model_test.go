package engine

import (
	"math"
	"math/rand"
	"testing"
)

func TestSoftmaxClassifierPredictProba(t *testing.T) {
	clf := &SoftmaxClassifier{
		Weights: [][]float64{
			{-2, 0},
			{0, 0},
			{2, 0},
		},
		Bias: []float64{0, 0, 0},
	}

	probs, err := clf.PredictProba([]float64{1, 0})
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	if len(probs) != 3 {
		t.Fatalf("expected 3 probabilities, got %d", len(probs))
	}

	var sum float64
	for i, p := range probs {
		if p <= 0 || p >= 1 {
			t.Errorf("probability %d out of open interval: %v", i, p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %v", sum)
	}
	if probs[2] <= probs[0] {
		t.Errorf("positive logit should dominate: %v", probs)
	}

	idx, err := clf.Predict([]float64{1, 0})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if idx != 2 {
		t.Errorf("expected class 2, got %d", idx)
	}
}

func TestSoftmaxClassifierShapeMismatch(t *testing.T) {
	clf := &SoftmaxClassifier{
		Weights: [][]float64{{1, 2}, {3, 4}, {5, 6}},
		Bias:    []float64{0, 0, 0},
	}
	if _, err := clf.PredictProba([]float64{1, 2, 3}); err == nil {
		t.Error("expected shape mismatch error")
	}

	malformed := &SoftmaxClassifier{Weights: [][]float64{{1}}, Bias: []float64{0, 0}}
	if _, err := malformed.PredictProba([]float64{1}); err == nil {
		t.Error("expected malformed weights error")
	}
}

func TestStandardScalerTransform(t *testing.T) {
	s := &StandardScaler{Mean: []float64{1, 10, 0}, Scale: []float64{2, 5, 0}}

	got, err := s.Transform([]float64{3, 10, 7})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	want := []float64{1, 0, 7} // zero-variance feature passes through
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("feature %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if _, err := s.Transform([]float64{1, 2}); err == nil {
		t.Error("expected shape mismatch error")
	}
}

func TestFitScaler(t *testing.T) {
	samples := [][]float64{
		{0, 4},
		{2, 4},
	}
	s, err := FitScaler(samples)
	if err != nil {
		t.Fatalf("FitScaler: %v", err)
	}
	if math.Abs(s.Mean[0]-1) > 1e-9 || math.Abs(s.Mean[1]-4) > 1e-9 {
		t.Errorf("unexpected means %v", s.Mean)
	}
	if math.Abs(s.Scale[0]-1) > 1e-9 || s.Scale[1] != 0 {
		t.Errorf("unexpected scales %v", s.Scale)
	}
}

// Training on cleanly separated data should comfortably beat chance.
func TestTrainSoftmax(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	var samples [][]float64
	var labels []int
	for i := 0; i < 300; i++ {
		class := i % 3
		center := float64(class-1) * 3.0 // -3, 0, 3
		samples = append(samples, []float64{
			center + rng.NormFloat64()*0.5,
			rng.NormFloat64(),
		})
		labels = append(labels, class)
	}

	clf, err := TrainSoftmax(samples, labels, 3)
	if err != nil {
		t.Fatalf("TrainSoftmax: %v", err)
	}

	acc, err := Accuracy(clf, samples, labels)
	if err != nil {
		t.Fatalf("Accuracy: %v", err)
	}
	if acc < 0.9 {
		t.Errorf("expected accuracy above 0.9 on separable data, got %v", acc)
	}
}

func TestTrainSoftmaxValidation(t *testing.T) {
	if _, err := TrainSoftmax(nil, nil, 3); err == nil {
		t.Error("expected error for empty training set")
	}
	if _, err := TrainSoftmax([][]float64{{1}}, []int{5}, 3); err == nil {
		t.Error("expected error for out-of-range label")
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	dir := t.TempDir()

	clf := &SoftmaxClassifier{
		Weights: [][]float64{{0.1, -0.2}, {0.3, 0.4}, {-0.5, 0.6}},
		Bias:    []float64{0.01, -0.02, 0.03},
	}
	scaler := &StandardScaler{Mean: []float64{1, 2}, Scale: []float64{3, 4}}

	if err := SaveClassifier(dir, clf); err != nil {
		t.Fatalf("SaveClassifier: %v", err)
	}
	if err := SaveScaler(dir, scaler); err != nil {
		t.Fatalf("SaveScaler: %v", err)
	}

	gotClf, err := LoadClassifier(dir)
	if err != nil {
		t.Fatalf("LoadClassifier: %v", err)
	}
	if gotClf == nil || gotClf.Weights[2][1] != 0.6 || gotClf.Bias[0] != 0.01 {
		t.Errorf("classifier did not round-trip: %+v", gotClf)
	}

	gotScaler, err := LoadScaler(dir)
	if err != nil {
		t.Fatalf("LoadScaler: %v", err)
	}
	if gotScaler == nil || gotScaler.Mean[1] != 2 || gotScaler.Scale[0] != 3 {
		t.Errorf("scaler did not round-trip: %+v", gotScaler)
	}
}

func TestLoadMissingArtifacts(t *testing.T) {
	dir := t.TempDir()

	clf, err := LoadClassifier(dir)
	if err != nil || clf != nil {
		t.Errorf("missing classifier should be (nil, nil), got (%v, %v)", clf, err)
	}
	scaler, err := LoadScaler(dir)
	if err != nil || scaler != nil {
		t.Errorf("missing scaler should be (nil, nil), got (%v, %v)", scaler, err)
	}
}
