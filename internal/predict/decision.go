package predict

import (
	"fmt"
	"math"

	"github.com/abhisek/passcheck/internal/features"
	"github.com/abhisek/passcheck/internal/model"
)

// Label is the predicted outcome.
type Label string

const (
	LabelPass Label = "PASS"
	LabelFail Label = "FAIL"
)

// Tier buckets the confidence of the predicted class.
type Tier string

const (
	TierHigh   Tier = "HIGH"
	TierMedium Tier = "MEDIUM"
	TierLow    Tier = "LOW"
)

// Tier thresholds on predicted-class confidence. Both bounds are inclusive.
const (
	HighThreshold   = 0.8
	MediumThreshold = 0.6
)

// TierFor maps a predicted-class confidence to its tier.
func TierFor(confidence float64) Tier {
	switch {
	case confidence >= HighThreshold:
		return TierHigh
	case confidence >= MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// Message returns the hint shown under the verdict.
func (t Tier) Message() string {
	switch t {
	case TierHigh:
		return "Confidence is high — scores are strong across all exams."
	case TierMedium:
		return "Scores are decent, but a bit borderline. Improving one subject could help."
	default:
		return "Low confidence — student may need additional support or preparation."
	}
}

// Result is the outcome of one prediction.
type Result struct {
	Label             Label   `json:"label"`
	ProbabilityOfPass float64 `json:"probability_of_pass"`
	// Confidence is the probability of Label: ProbabilityOfPass for PASS,
	// 1-ProbabilityOfPass for FAIL.
	Confidence float64 `json:"confidence"`
	Tier       Tier    `json:"tier"`
}

// Headline renders the verdict line, e.g. "The student is likely to PASS. Confidence: 0.82".
func (r Result) Headline() string {
	return fmt.Sprintf("The student is likely to %s. Confidence: %.2f", r.Label, r.Confidence)
}

// FormatProbability renders ProbabilityOfPass to two decimal places.
func (r Result) FormatProbability() string {
	return fmt.Sprintf("%.2f", r.ProbabilityOfPass)
}

// Decide scales v, runs the classifier and classifies the outcome. Any
// collaborator failure or malformed output is returned as *PredictionError.
func Decide(v features.Vector, scaler model.Scaler, clf model.Classifier) (Result, error) {
	scaled, err := scaler.Transform(v)
	if err != nil {
		return Result{}, &PredictionError{Stage: StageScale, Err: err}
	}

	raw, proba, err := clf.PredictProba(scaled)
	if err != nil {
		return Result{}, &PredictionError{Stage: StagePredict, Err: err}
	}
	if math.IsNaN(proba) || proba < 0 || proba > 1 {
		return Result{}, &PredictionError{Stage: StagePredict, Err: fmt.Errorf("probability %v outside [0, 1]", proba)}
	}

	var res Result
	res.ProbabilityOfPass = proba
	switch raw {
	case 1:
		res.Label = LabelPass
		res.Confidence = proba
	case 0:
		res.Label = LabelFail
		res.Confidence = 1 - proba
	default:
		return Result{}, &PredictionError{Stage: StagePredict, Err: fmt.Errorf("label %d not in {0, 1}", raw)}
	}
	res.Tier = TierFor(res.Confidence)
	return res, nil
}
