// Package model holds the pre-trained collaborators of the prediction
// pipeline: a feature scaler and a binary pass/fail classifier.
//
// Both are consumed through small interfaces so the pipeline does not depend
// on any artifact format. The file-backed implementations in this package
// read JSON artifacts exported from the training notebook.
package model

import "github.com/abhisek/passcheck/internal/features"

// Scaler normalizes a feature vector. Implementations must be deterministic
// and free of side effects.
type Scaler interface {
	Transform(v features.Vector) (features.Vector, error)
}

// Classifier predicts the pass/fail class of a scaled feature vector.
// label is 1 for PASS and 0 for FAIL; probaPass is the probability of the
// positive (PASS) class.
type Classifier interface {
	PredictProba(v features.Vector) (label int, probaPass float64, err error)
}
