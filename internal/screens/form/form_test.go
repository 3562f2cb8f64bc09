package form

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/passcheck/internal/predict"
	"github.com/abhisek/passcheck/internal/router"
	"github.com/abhisek/passcheck/internal/screens/result"
	"github.com/abhisek/passcheck/internal/student"
)

type stubPredictor struct {
	res   predict.Result
	err   error
	calls []student.Record
}

func (p *stubPredictor) Predict(r student.Record) (predict.Result, error) {
	p.calls = append(p.calls, r)
	return p.res, p.err
}

func press(f *FormScreen, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = f.Update(m)
	}
	return cmd
}

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	up    = tea.KeyPressMsg{Code: tea.KeyUp}
	left  = tea.KeyPressMsg{Code: tea.KeyLeft}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	pgUp  = tea.KeyPressMsg{Code: tea.KeyPgUp}
	pgDn  = tea.KeyPressMsg{Code: tea.KeyPgDown}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestNewStartsAtDefaults(t *testing.T) {
	f := New(&stubPredictor{})
	assert.Equal(t, student.DefaultRecord(), f.Record())
	assert.Equal(t, 0, f.focus)
}

func TestSelectorsCycle(t *testing.T) {
	f := New(&stubPredictor{})

	press(f, right)
	assert.Equal(t, "male", f.Record().Gender)
	press(f, right)
	assert.Equal(t, "male", f.Record().Gender, "stops at last option")
	press(f, left)
	assert.Equal(t, "female", f.Record().Gender)

	press(f, down, right, right, right)
	assert.Equal(t, "group D", f.Record().RaceEthnicity)
}

func TestSlidersStepAndClamp(t *testing.T) {
	f := New(&stubPredictor{})
	press(f, down, down, down, down, down) // math

	press(f, right)
	assert.Equal(t, 71, f.Record().Math)
	press(f, pgUp, pgUp, pgUp, pgUp)
	assert.Equal(t, student.MaxScore, f.Record().Math)
	press(f, down, pgDn, pgDn, pgDn, pgDn, pgDn, pgDn, pgDn, pgDn)
	assert.Equal(t, student.MinScore, f.Record().Reading)
	assert.Equal(t, student.DefaultScore, f.Record().Writing)
}

func TestFocusWraps(t *testing.T) {
	f := New(&stubPredictor{})
	press(f, up)
	assert.Equal(t, focusSubmit, f.focus)
	press(f, down)
	assert.Equal(t, 0, f.focus)
}

func TestEnterOnFieldAdvances(t *testing.T) {
	p := &stubPredictor{}
	f := New(p)
	cmd := press(f, enter)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, f.focus)
	assert.Empty(t, p.calls)
}

func TestSubmitPushesResult(t *testing.T) {
	p := &stubPredictor{res: predict.Result{
		Label:             predict.LabelPass,
		ProbabilityOfPass: 0.9,
		Confidence:        0.9,
		Tier:              predict.TierHigh,
	}}
	f := New(p)
	press(f, up)
	cmd := press(f, enter)

	require.Len(t, p.calls, 1)
	assert.Equal(t, student.DefaultRecord(), p.calls[0])

	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	rs, ok := msg.Screen.(*result.ResultScreen)
	require.True(t, ok)
	assert.Equal(t, predict.LabelPass, rs.Result().Label)
	assert.NoError(t, f.Err())
}

func TestSubmitErrorShownInline(t *testing.T) {
	p := &stubPredictor{err: errors.New("predict: scale: boom")}
	f := New(p)
	press(f, up)
	cmd := press(f, enter)

	assert.Nil(t, cmd)
	require.Error(t, f.Err())
	assert.Contains(t, f.View(120, 50), "boom")

	press(f, down, right)
	assert.NoError(t, f.Err(), "editing clears the error")
}

func TestResetRestoresDefaults(t *testing.T) {
	f := New(&stubPredictor{})
	press(f, right, down, down, down, down, pgDn)
	require.NotEqual(t, student.DefaultRecord(), f.Record())

	press(f, tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	assert.Equal(t, student.DefaultRecord(), f.Record())
	assert.Equal(t, 0, f.focus)
}

func TestKeyHints(t *testing.T) {
	hints := New(&stubPredictor{}).KeyHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "Enter", hints[3].Key)
	assert.Equal(t, "Ctrl+C", hints[len(hints)-1].Key)
}

func TestViewListsFields(t *testing.T) {
	view := New(&stubPredictor{}).View(120, 50)
	for _, want := range []string{"Gender", "Race/Ethnicity", "Math Score", "Writing Score", "Predict"} {
		assert.Contains(t, view, want)
	}
}
