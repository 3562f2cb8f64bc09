package model

import (
	"sync"

	"github.com/abhisek/passcheck/internal/features"
)

// MockScaler is a deterministic Scaler for testing. It returns its input
// unchanged unless Err is set, and records every call.
type MockScaler struct {
	mu    sync.Mutex
	Err   error
	Calls []features.Vector
}

// Transform records v and returns it, or Err.
func (m *MockScaler) Transform(v features.Vector) (features.Vector, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, v)
	if m.Err != nil {
		return features.Vector{}, m.Err
	}
	return v, nil
}

// CallCount returns the number of Transform calls made.
func (m *MockScaler) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockClassifier is a deterministic Classifier that returns a canned
// prediction and records every call.
type MockClassifier struct {
	mu        sync.Mutex
	Label     int
	ProbaPass float64
	Err       error
	Calls     []features.Vector
}

// NewMockClassifier creates a MockClassifier returning (label, probaPass).
func NewMockClassifier(label int, probaPass float64) *MockClassifier {
	return &MockClassifier{Label: label, ProbaPass: probaPass}
}

// PredictProba records v and returns the canned prediction, or Err.
func (m *MockClassifier) PredictProba(v features.Vector) (int, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, v)
	if m.Err != nil {
		return 0, 0, m.Err
	}
	return m.Label, m.ProbaPass, nil
}

// CallCount returns the number of PredictProba calls made.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
