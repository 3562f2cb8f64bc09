package student

import "fmt"

// UnknownCategoryError indicates a categorical value outside its closed set.
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}

// ScoreRangeError indicates an exam score outside [MinScore, MaxScore].
type ScoreRangeError struct {
	Field string
	Value int
}

func (e *ScoreRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, MinScore, MaxScore)
}
