package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passcheck/internal/predict"
	"github.com/abhisek/passcheck/internal/router"
	"github.com/abhisek/passcheck/internal/screen"
	"github.com/abhisek/passcheck/internal/student"
	"github.com/abhisek/passcheck/internal/ui/components"
	"github.com/abhisek/passcheck/internal/ui/layout"
	"github.com/abhisek/passcheck/internal/ui/theme"
)

const barWidth = 50

// ResultScreen shows the verdict for one submitted record.
type ResultScreen struct {
	record student.Record
	result predict.Result
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a result screen for r and its prediction res.
func New(r student.Record, res predict.Result) *ResultScreen {
	return &ResultScreen{record: r, result: res}
}

// Result returns the prediction being displayed.
func (s *ResultScreen) Result() predict.Result {
	return s.result
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Prediction Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Back to form"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Section.Render("🔍 Prediction Result"))
	b.WriteString("\n\n")

	headline := s.result.Headline()
	if s.result.Label == predict.LabelPass {
		b.WriteString(theme.Pass.Render("✓ " + headline))
	} else {
		b.WriteString(theme.Fail.Render("✗ " + headline))
	}
	b.WriteString("\n\n")

	bar := components.NewProgressBar("P(pass)", s.result.ProbabilityOfPass, barWidth)
	if s.result.Label == predict.LabelFail {
		bar.Fill = theme.Error
	}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("Tier: %s", s.result.Tier)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(s.result.Tier.Message()))
	b.WriteString("\n\n")

	b.WriteString(theme.Section.Render("Inputs"))
	b.WriteString("\n")
	b.WriteString(s.summary())

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *ResultScreen) summary() string {
	r := s.record
	rows := [][2]string{
		{"Gender", r.Gender},
		{"Race/Ethnicity", r.RaceEthnicity},
		{"Parental Education", r.ParentalEducation},
		{"Lunch", r.Lunch},
		{"Test Preparation", r.TestPrep},
		{"Scores (M/R/W)", fmt.Sprintf("%d / %d / %d", r.Math, r.Reading, r.Writing)},
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(22)
	var lines []string
	for _, row := range rows {
		lines = append(lines, label.Render(row[0])+theme.Body.Render(row[1]))
	}
	return strings.Join(lines, "\n")
}
