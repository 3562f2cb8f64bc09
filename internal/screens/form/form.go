package form

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passcheck/internal/predict"
	"github.com/abhisek/passcheck/internal/router"
	"github.com/abhisek/passcheck/internal/screen"
	"github.com/abhisek/passcheck/internal/screens/result"
	"github.com/abhisek/passcheck/internal/student"
	"github.com/abhisek/passcheck/internal/ui/components"
	"github.com/abhisek/passcheck/internal/ui/layout"
	"github.com/abhisek/passcheck/internal/ui/theme"
)

const (
	labelWidth  = 30
	sliderWidth = 30
)

// Predictor scores a completed form.
type Predictor interface {
	Predict(r student.Record) (predict.Result, error)
}

// Field focus order: five selectors, three sliders, then the button.
const (
	numSelects  = 5
	numSliders  = 3
	focusCount  = numSelects + numSliders + 1
	focusSubmit = focusCount - 1
)

// FormScreen is the single-page student form.
type FormScreen struct {
	predictor Predictor
	keys      keyMap
	selects   [numSelects]components.Select
	sliders   [numSliders]components.Slider
	submit    components.Button
	focus     int
	err       error
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates a form initialized to the default record.
func New(p Predictor) *FormScreen {
	f := &FormScreen{
		predictor: p,
		keys:      defaultKeyMap(),
		submit:    components.NewButton("Predict"),
	}
	f.load(student.DefaultRecord())
	return f
}

func (f *FormScreen) load(r student.Record) {
	labels := [numSelects]string{
		"Gender",
		"Race/Ethnicity",
		"Parental Level of Education",
		"Lunch Type",
		"Test Preparation Course",
	}
	values := [numSelects]string{r.Gender, r.RaceEthnicity, r.ParentalEducation, r.Lunch, r.TestPrep}
	for i, tb := range student.Tables() {
		f.selects[i] = components.NewSelect(labels[i], tb.Options(), values[i])
	}

	f.sliders[0] = components.NewSlider("Math Score", student.MinScore, student.MaxScore, r.Math, sliderWidth)
	f.sliders[1] = components.NewSlider("Reading Score", student.MinScore, student.MaxScore, r.Reading, sliderWidth)
	f.sliders[2] = components.NewSlider("Writing Score", student.MinScore, student.MaxScore, r.Writing, sliderWidth)

	f.focus = 0
	f.err = nil
	f.syncFocus()
}

// Record returns the current form state.
func (f *FormScreen) Record() student.Record {
	return student.Record{
		Gender:            f.selects[0].Value(),
		RaceEthnicity:     f.selects[1].Value(),
		ParentalEducation: f.selects[2].Value(),
		Lunch:             f.selects[3].Value(),
		TestPrep:          f.selects[4].Value(),
		Math:              f.sliders[0].Value,
		Reading:           f.sliders[1].Value,
		Writing:           f.sliders[2].Value,
	}
}

func (f *FormScreen) Init() tea.Cmd {
	return nil
}

func (f *FormScreen) Title() string {
	return "Student Pass/Fail Prediction"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return f.keys.hints()
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return f, nil
	}

	switch {
	case key.Matches(kmsg, f.keys.Next):
		f.moveFocus(1)
	case key.Matches(kmsg, f.keys.Prev):
		f.moveFocus(-1)
	case key.Matches(kmsg, f.keys.Dec):
		f.adjust(-1, -1)
	case key.Matches(kmsg, f.keys.Inc):
		f.adjust(1, 1)
	case key.Matches(kmsg, f.keys.DecLarge):
		f.adjust(-1, -10)
	case key.Matches(kmsg, f.keys.IncLarge):
		f.adjust(1, 10)
	case key.Matches(kmsg, f.keys.Reset):
		f.load(student.DefaultRecord())
	case key.Matches(kmsg, f.keys.Submit):
		if f.focus != focusSubmit {
			f.moveFocus(1)
			return f, nil
		}
		return f, f.runPrediction()
	}
	return f, nil
}

func (f *FormScreen) moveFocus(delta int) {
	f.focus = (f.focus + delta + focusCount) % focusCount
	f.syncFocus()
}

func (f *FormScreen) syncFocus() {
	for i := range f.selects {
		f.selects[i].Focused = f.focus == i
	}
	for i := range f.sliders {
		f.sliders[i].Focused = f.focus == numSelects+i
	}
	f.submit.Focused = f.focus == focusSubmit
}

// adjust moves the focused selector by one option in dir, or the focused
// slider by step.
func (f *FormScreen) adjust(dir, step int) {
	f.err = nil
	switch {
	case f.focus < numSelects:
		if dir < 0 {
			f.selects[f.focus].Prev()
		} else {
			f.selects[f.focus].Next()
		}
	case f.focus < focusSubmit:
		f.sliders[f.focus-numSelects].Step(step)
	}
}

func (f *FormScreen) runPrediction() tea.Cmd {
	rec := f.Record()
	res, err := f.predictor.Predict(rec)
	if err != nil {
		f.err = err
		return nil
	}
	f.err = nil
	next := result.New(rec, res)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// Err returns the error from the last prediction attempt, if any.
func (f *FormScreen) Err() error {
	return f.err
}

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("🎓 Student Pass/Fail Prediction"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(
		"Predicts whether a student is likely to pass or fail based on exam scores and background."))
	b.WriteString("\n\n")

	b.WriteString(theme.Section.Render("📋 Student Info"))
	b.WriteString("\n")
	for _, s := range f.selects {
		b.WriteString(s.View(labelWidth))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Section.Render("✏️  Exam Scores"))
	b.WriteString("\n")
	for _, s := range f.sliders {
		b.WriteString(s.View(labelWidth))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(f.submit.View())
	if f.err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Fail.Render("✗ " + f.err.Error()))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
