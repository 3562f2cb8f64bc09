package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/passcheck/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a value in 0.0–1.0.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
	Fill    color.Color
}

// NewProgressBar creates a new progress bar filled with the secondary color.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
		Fill:    theme.Secondary,
	}
}

// View renders the bar followed by the value to two decimal places.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	valueWidth := 6 // "  0.00"

	barWidth := p.Width - labelWidth - valueWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().Background(p.Fill).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %.2f", p.Percent))

	return result
}
