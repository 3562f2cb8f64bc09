package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/passcheck/internal/ui/theme"
)

// Select cycles through a fixed list of options on one line.
type Select struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewSelect creates a selector with the option equal to value selected,
// or the first option if value is not present.
func NewSelect(label string, options []string, value string) Select {
	s := Select{Label: label, Options: options}
	for i, opt := range options {
		if opt == value {
			s.Selected = i
			break
		}
	}
	return s
}

// Next moves to the following option, stopping at the last.
func (s *Select) Next() {
	if s.Selected < len(s.Options)-1 {
		s.Selected++
	}
}

// Prev moves to the preceding option, stopping at the first.
func (s *Select) Prev() {
	if s.Selected > 0 {
		s.Selected--
	}
}

// Value returns the selected option.
func (s Select) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Selected]
}

// View renders the selector as "Label   ‹ option ›".
func (s Select) View(labelWidth int) string {
	label := lipgloss.NewStyle().Width(labelWidth).Foreground(theme.TextDim).Render(s.Label)

	left, right := " ", " "
	if s.Focused && s.Selected > 0 {
		left = "‹"
	}
	if s.Focused && s.Selected < len(s.Options)-1 {
		right = "›"
	}
	value := fmt.Sprintf("%s %s %s", left, s.Value(), right)

	style := theme.Unselected
	prefix := "  "
	if s.Focused {
		style = theme.Selected
		prefix = "▸ "
	}
	return style.Render(prefix) + label + style.Render(value)
}
