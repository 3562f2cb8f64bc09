package predict

import (
	"errors"
	"math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/passcheck/internal/features"
	"github.com/abhisek/passcheck/internal/model"
	"github.com/abhisek/passcheck/internal/student"
)

func strongRecord() student.Record {
	return student.Record{
		Gender:            "male",
		RaceEthnicity:     "group C",
		ParentalEducation: "bachelor's degree",
		Lunch:             "standard",
		TestPrep:          "completed",
		Math:              90,
		Reading:           85,
		Writing:           88,
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Tier
	}{
		{1.0, TierHigh},
		{0.95, TierHigh},
		{0.8, TierHigh},
		{0.7999, TierMedium},
		{0.65, TierMedium},
		{0.6, TierMedium},
		{0.5999, TierLow},
		{0.5, TierLow},
		{0.0, TierLow},
	}

	for _, tt := range tests {
		got := TierFor(tt.confidence)
		assert.Equal(t, tt.want, got, "TierFor(%v)", tt.confidence)
	}
}

func TestTierMessages(t *testing.T) {
	assert.Equal(t, "Confidence is high — scores are strong across all exams.", TierHigh.Message())
	assert.Equal(t, "Scores are decent, but a bit borderline. Improving one subject could help.", TierMedium.Message())
	assert.Equal(t, "Low confidence — student may need additional support or preparation.", TierLow.Message())
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		label      int
		proba      float64
		want       Label
		confidence float64
		tier       Tier
	}{
		{"confident pass", 1, 0.82, LabelPass, 0.82, TierHigh},
		{"borderline fail", 0, 0.35, LabelFail, 0.65, TierMedium},
		{"confident fail", 0, 0.05, LabelFail, 0.95, TierHigh},
		{"weak pass", 1, 0.55, LabelPass, 0.55, TierLow},
		{"weak fail", 0, 0.45, LabelFail, 0.55, TierLow},
		{"pass at high bound", 1, 0.8, LabelPass, 0.8, TierHigh},
		{"fail at medium bound", 0, 0.4, LabelFail, 0.6, TierMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaler := &model.MockScaler{}
			clf := model.NewMockClassifier(tt.label, tt.proba)

			res, err := Decide(features.Vector{1, 2, 3}, scaler, clf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Label)
			assert.Equal(t, tt.proba, res.ProbabilityOfPass)
			assert.InDelta(t, tt.confidence, res.Confidence, 1e-9)
			assert.Equal(t, tt.tier, res.Tier)
		})
	}
}

func TestDecide_PassesScaledVectorToClassifier(t *testing.T) {
	scaler, err := model.NewStandardScaler(
		features.Vector{},
		features.Vector{1, 1, 1, 1, 1, 10, 10, 10, 1, 1, 1},
	)
	require.NoError(t, err)
	clf := model.NewMockClassifier(1, 0.9)

	_, err = Decide(features.Vector{features.ColMath: 90}, scaler, clf)
	require.NoError(t, err)
	require.Equal(t, 1, clf.CallCount())
	assert.Equal(t, 9.0, clf.Calls[0][features.ColMath])
}

func TestDecide_Errors(t *testing.T) {
	boom := errors.New("shape mismatch")

	tests := []struct {
		name   string
		scaler *model.MockScaler
		clf    *model.MockClassifier
		stage  Stage
		cause  error
	}{
		{"scaler fails", &model.MockScaler{Err: boom}, model.NewMockClassifier(1, 0.9), StageScale, boom},
		{"classifier fails", &model.MockScaler{}, &model.MockClassifier{Err: boom}, StagePredict, boom},
		{"label out of set", &model.MockScaler{}, model.NewMockClassifier(2, 0.9), StagePredict, nil},
		{"probability above one", &model.MockScaler{}, model.NewMockClassifier(1, 1.2), StagePredict, nil},
		{"probability negative", &model.MockScaler{}, model.NewMockClassifier(0, -0.1), StagePredict, nil},
		{"probability NaN", &model.MockScaler{}, model.NewMockClassifier(1, math.NaN()), StagePredict, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Decide(features.Vector{}, tt.scaler, tt.clf)
			require.Error(t, err)
			assert.Equal(t, Result{}, res)

			var predErr *PredictionError
			require.True(t, errors.As(err, &predErr), "got %T", err)
			assert.Equal(t, tt.stage, predErr.Stage)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestDecide_ScalerFailureSkipsClassifier(t *testing.T) {
	clf := model.NewMockClassifier(1, 0.9)
	_, err := Decide(features.Vector{}, &model.MockScaler{Err: errors.New("x")}, clf)
	require.Error(t, err)
	assert.Equal(t, 0, clf.CallCount())
}

func TestResultFormatting(t *testing.T) {
	pass := Result{Label: LabelPass, ProbabilityOfPass: 0.8234, Confidence: 0.8234, Tier: TierHigh}
	assert.Equal(t, "The student is likely to PASS. Confidence: 0.82", pass.Headline())
	assert.Equal(t, "0.82", pass.FormatProbability())

	fail := Result{Label: LabelFail, ProbabilityOfPass: 0.35, Confidence: 0.65, Tier: TierMedium}
	assert.Equal(t, "The student is likely to FAIL. Confidence: 0.65", fail.Headline())
	assert.Equal(t, "0.35", fail.FormatProbability())
}

func TestPredictor_EndToEnd(t *testing.T) {
	scaler := &model.MockScaler{}
	clf := model.NewMockClassifier(1, 0.82)
	p := New(scaler, clf)

	res, err := p.Predict(strongRecord())
	require.NoError(t, err)
	assert.Equal(t, Result{Label: LabelPass, ProbabilityOfPass: 0.82, Confidence: 0.82, Tier: TierHigh}, res)

	require.Equal(t, 1, scaler.CallCount())
	assert.Equal(t, features.Vector{1, 2, 4, 0, 1, 90, 85, 88, 5, 352, 180}, scaler.Calls[0])
}

func TestPredictor_InvalidInputFailsFast(t *testing.T) {
	tests := []struct {
		name string
		edit func(*student.Record)
		want any
	}{
		{"unknown category", func(r *student.Record) { r.Gender = "unknown" }, &student.UnknownCategoryError{}},
		{"score out of range", func(r *student.Record) { r.Math = 101 }, &student.ScoreRangeError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaler := &model.MockScaler{}
			clf := model.NewMockClassifier(1, 0.9)
			r := strongRecord()
			tt.edit(&r)

			_, err := New(scaler, clf).Predict(r)
			require.Error(t, err)
			assert.IsType(t, tt.want, err)
			assert.Equal(t, 0, scaler.CallCount())
			assert.Equal(t, 0, clf.CallCount())
		})
	}
}

func TestPredictor_WithArtifacts(t *testing.T) {
	art, err := model.Load(model.Paths{
		Model:  filepath.Join("..", "model", "testdata", "model.json"),
		Scaler: filepath.Join("..", "model", "testdata", "scaler.json"),
	})
	require.NoError(t, err)
	p := FromArtifacts(art)

	res, err := p.Predict(strongRecord())
	require.NoError(t, err)
	assert.Equal(t, LabelPass, res.Label)
	assert.Equal(t, TierHigh, res.Tier)

	weak := student.DefaultRecord()
	weak.Math, weak.Reading, weak.Writing = 20, 20, 20
	res, err = p.Predict(weak)
	require.NoError(t, err)
	assert.Equal(t, LabelFail, res.Label)
	assert.Equal(t, TierHigh, res.Tier)
	assert.InDelta(t, 1-res.ProbabilityOfPass, res.Confidence, 1e-12)

	flat := student.DefaultRecord()
	flat.Lunch = "free/reduced"
	res, err = p.Predict(flat)
	require.NoError(t, err)
	assert.Equal(t, LabelPass, res.Label)
	assert.Equal(t, TierMedium, res.Tier)
}

func TestPredictor_Idempotent(t *testing.T) {
	scaler, err := model.NewStandardScaler(
		features.Vector{0.5, 2, 2.5, 0.35, 0.35, 66, 69, 68, 11, 170, 145},
		features.Vector{0.5, 1.2, 1.5, 0.5, 0.5, 15, 15, 15, 6, 110, 95},
	)
	require.NoError(t, err)
	clf := model.NewLogisticRegression(features.Vector{features.ColMath: 1.5, features.ColWriting: 1.3}, 0.4)
	p := New(scaler, clf)

	first, err := p.Predict(strongRecord())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = p.Predict(strongRecord())
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, first, r)
	}
}
