package model

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/abhisek/passcheck/internal/features"
)

// ErrNonFinite is returned when a decision value is NaN or infinite.
var ErrNonFinite = errors.New("non-finite decision value")

// LogisticRegression is a fitted binary logistic regression over the
// scaled feature vector.
type LogisticRegression struct {
	coef      []float64
	intercept float64
}

var _ Classifier = (*LogisticRegression)(nil)

// NewLogisticRegression builds a classifier from fitted weights.
func NewLogisticRegression(coef features.Vector, intercept float64) *LogisticRegression {
	return &LogisticRegression{coef: coef.Slice(), intercept: intercept}
}

// Decision returns w·x + b.
func (m *LogisticRegression) Decision(v features.Vector) float64 {
	return floats.Dot(m.coef, v.Slice()) + m.intercept
}

// PredictProba returns the predicted label and the PASS probability. The
// label is 1 iff the decision value is strictly positive.
func (m *LogisticRegression) PredictProba(v features.Vector) (int, float64, error) {
	z := m.Decision(v)
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, 0, ErrNonFinite
	}

	label := 0
	if z > 0 {
		label = 1
	}
	return label, sigmoid(z), nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	// Avoids overflow of exp(-z) for large negative z.
	e := math.Exp(z)
	return e / (1 + e)
}
