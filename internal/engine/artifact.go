package engine

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names inside the model directory.
const (
	ClassifierFileName = "clutch_model.gob"
	ScalerFileName     = "feature_scaler.gob"
)

// LoadClassifier reads a gob-serialized classifier. A missing file returns
// (nil, nil): running without a model is a supported mode, not an error.
func LoadClassifier(dir string) (*SoftmaxClassifier, error) {
	var clf SoftmaxClassifier
	ok, err := loadGob(filepath.Join(dir, ClassifierFileName), &clf)
	if err != nil || !ok {
		return nil, err
	}
	return &clf, nil
}

// LoadScaler reads a gob-serialized feature scaler; missing file is not an error.
func LoadScaler(dir string) (*StandardScaler, error) {
	var sc StandardScaler
	ok, err := loadGob(filepath.Join(dir, ScalerFileName), &sc)
	if err != nil || !ok {
		return nil, err
	}
	return &sc, nil
}

// SaveClassifier writes the classifier artifact, creating the directory if needed.
func SaveClassifier(dir string, clf *SoftmaxClassifier) error {
	return saveGob(dir, ClassifierFileName, clf)
}

// SaveScaler writes the scaler artifact, creating the directory if needed.
func SaveScaler(dir string, sc *StandardScaler) error {
	return saveGob(dir, ScalerFileName, sc)
}

func loadGob(path string, v any) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("open artifact %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return false, fmt.Errorf("decode artifact %s: %w", path, err)
	}
	return true, nil
}

func saveGob(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact %s: %w", path, err)
	}
	if err := gob.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode artifact %s: %w", path, err)
	}
	return f.Close()
}
