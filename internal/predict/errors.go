package predict

import "fmt"

// Stage names the collaborator call that failed.
type Stage string

const (
	StageScale   Stage = "scale"
	StagePredict Stage = "predict"
)

// PredictionError indicates the scaler or classifier failed or returned a
// malformed result. The request fails; there is no retry or fallback.
type PredictionError struct {
	Stage Stage
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed at %s: %v", e.Stage, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }
