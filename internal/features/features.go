// Package features builds the classifier input row from a student record.
//
// The column order of Vector is a contract with the fitted scaler and
// classifier: both were trained on exactly this order, and a reordering
// produces wrong predictions without any runtime error.
package features

import (
	"gonum.org/v1/gonum/floats"

	"github.com/abhisek/passcheck/internal/student"
)

// Size is the number of columns in a feature vector.
const Size = 11

// Column indices into a Vector.
const (
	ColGender = iota
	ColRaceEthnicity
	ColParentalEducation
	ColLunch
	ColTestPrep
	ColMath
	ColReading
	ColWriting
	ColScoreRange
	ColParentalWriting
	ColRaceMath
)

// Columns holds the training column names in vector order.
var Columns = [Size]string{
	"gender",
	"race/ethnicity",
	"parental level of education",
	"lunch",
	"test preparation course",
	"math score",
	"reading score",
	"writing score",
	"score_range",
	"parental_edu_x_writing",
	"race_x_math",
}

// Vector is one classifier input row in Columns order.
type Vector [Size]float64

// Slice returns the vector as a slice sharing no memory with v.
func (v Vector) Slice() []float64 {
	out := make([]float64, Size)
	copy(out, v[:])
	return out
}

// Scores holds the three raw exam scores.
type Scores struct {
	Math    int
	Reading int
	Writing int
}

// ScoreRange returns max(math, reading, writing) - min(math, reading, writing).
func ScoreRange(s Scores) int {
	v := []float64{float64(s.Math), float64(s.Reading), float64(s.Writing)}
	return int(floats.Max(v) - floats.Min(v))
}

// Synthesize derives the engineered features and assembles the row.
func Synthesize(enc student.Encoded, s Scores) Vector {
	var v Vector
	v[ColGender] = float64(enc.Gender)
	v[ColRaceEthnicity] = float64(enc.RaceEthnicity)
	v[ColParentalEducation] = float64(enc.ParentalEducation)
	v[ColLunch] = float64(enc.Lunch)
	v[ColTestPrep] = float64(enc.TestPrep)
	v[ColMath] = float64(s.Math)
	v[ColReading] = float64(s.Reading)
	v[ColWriting] = float64(s.Writing)
	v[ColScoreRange] = float64(ScoreRange(s))
	v[ColParentalWriting] = float64(enc.ParentalEducation * s.Writing)
	v[ColRaceMath] = float64(enc.RaceEthnicity * s.Math)
	return v
}

// Build validates r and returns its feature vector. Nothing is computed
// for an invalid record.
func Build(r student.Record) (Vector, error) {
	if err := r.Validate(); err != nil {
		return Vector{}, err
	}
	enc, err := student.Encode(r)
	if err != nil {
		return Vector{}, err
	}
	return Synthesize(enc, Scores{Math: r.Math, Reading: r.Reading, Writing: r.Writing}), nil
}
