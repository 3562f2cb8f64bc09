package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/passcheck/internal/ui/theme"
)

// Slider is a bounded integer input rendered as a bar.
type Slider struct {
	Label   string
	Min     int
	Max     int
	Value   int
	Focused bool
	Width   int
}

// NewSlider creates a slider clamped to [lo, hi].
func NewSlider(label string, lo, hi, value, width int) Slider {
	s := Slider{Label: label, Min: lo, Max: hi, Width: width}
	s.Set(value)
	return s
}

// Set assigns v, clamped to the slider bounds.
func (s *Slider) Set(v int) {
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	s.Value = v
}

// Step moves the value by delta, clamped to the slider bounds.
func (s *Slider) Step(delta int) {
	s.Set(s.Value + delta)
}

// Fraction returns the value position within [Min, Max] as 0.0–1.0.
func (s Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return float64(s.Value-s.Min) / float64(s.Max-s.Min)
}

// View renders "Label   ━━━━━●──────  70".
func (s Slider) View(labelWidth int) string {
	label := lipgloss.NewStyle().Width(labelWidth).Foreground(theme.TextDim).Render(s.Label)

	width := s.Width
	if width < 4 {
		width = 4
	}
	pos := int(float64(width-1) * s.Fraction())

	trackColor := theme.Border
	fillColor := theme.Secondary
	prefix := "  "
	if s.Focused {
		fillColor = theme.Primary
		prefix = "▸ "
	}

	filled := lipgloss.NewStyle().Foreground(fillColor).Render(strings.Repeat("━", pos))
	knob := lipgloss.NewStyle().Foreground(fillColor).Bold(true).Render("●")
	empty := lipgloss.NewStyle().Foreground(trackColor).Render(strings.Repeat("─", width-1-pos))

	valueStyle := theme.Unselected
	if s.Focused {
		valueStyle = theme.Selected
	}
	return valueStyle.Render(prefix) + label + filled + knob + empty + valueStyle.Render(fmt.Sprintf("  %3d", s.Value))
}
