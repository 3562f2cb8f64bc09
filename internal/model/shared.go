package model

import (
	"fmt"
	"sync"
)

// Paths locates the two artifacts on disk.
type Paths struct {
	Model  string
	Scaler string
}

// Artifacts is the loaded scaler/classifier pair. It is immutable once
// returned and safe for concurrent use by any number of requests.
type Artifacts struct {
	Scaler     Scaler
	Classifier Classifier
}

// Load reads both artifacts.
func Load(p Paths) (*Artifacts, error) {
	scaler, err := LoadScaler(p.Scaler)
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	clf, err := LoadClassifier(p.Model)
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	return &Artifacts{Scaler: scaler, Classifier: clf}, nil
}

var shared struct {
	once sync.Once
	art  *Artifacts
	err  error
}

// Shared loads the process-wide artifacts on first call and returns the
// same pair (or the same error) on every later call. Paths passed after
// the first call are ignored.
func Shared(p Paths) (*Artifacts, error) {
	shared.once.Do(func() {
		shared.art, shared.err = Load(p)
	})
	return shared.art, shared.err
}
