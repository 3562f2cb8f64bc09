// Package predict turns a student record into a pass/fail verdict.
package predict

import (
	"github.com/abhisek/passcheck/internal/features"
	"github.com/abhisek/passcheck/internal/model"
	"github.com/abhisek/passcheck/internal/student"
)

// Predictor runs the full pipeline against a fixed scaler and classifier.
// It holds no per-request state and is safe for concurrent use as long as
// its collaborators are.
type Predictor struct {
	scaler     model.Scaler
	classifier model.Classifier
}

// New creates a Predictor.
func New(scaler model.Scaler, classifier model.Classifier) *Predictor {
	return &Predictor{scaler: scaler, classifier: classifier}
}

// FromArtifacts creates a Predictor over a loaded artifact pair.
func FromArtifacts(a *model.Artifacts) *Predictor {
	return New(a.Scaler, a.Classifier)
}

// Predict validates and encodes r, builds its feature vector, and decides.
// Invalid input fails before either collaborator is called.
func (p *Predictor) Predict(r student.Record) (Result, error) {
	v, err := features.Build(r)
	if err != nil {
		return Result{}, err
	}
	return Decide(v, p.scaler, p.classifier)
}
