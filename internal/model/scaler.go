package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/abhisek/passcheck/internal/features"
)

// StandardScaler centers each column on its training mean and divides by
// its training standard deviation.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

var _ Scaler = (*StandardScaler)(nil)

// NewStandardScaler builds a scaler from fitted parameters. Every scale
// entry must be finite and non-zero.
func NewStandardScaler(mean, scale features.Vector) (*StandardScaler, error) {
	for i, s := range scale {
		if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("scale for %q must be finite and non-zero, got %v", features.Columns[i], s)
		}
	}
	return &StandardScaler{mean: mean.Slice(), scale: scale.Slice()}, nil
}

// Transform returns (v - mean) / scale column by column.
func (s *StandardScaler) Transform(v features.Vector) (features.Vector, error) {
	row := v.Slice()
	floats.SubTo(row, row, s.mean)
	floats.DivTo(row, row, s.scale)

	var out features.Vector
	copy(out[:], row)
	return out, nil
}
