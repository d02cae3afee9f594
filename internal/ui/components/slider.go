package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerform/internal/ui/theme"
)

// Slider renders an integer scale from Min to Max.
type Slider struct {
	Min, Max int
	Value    int
}

// Step returns the value moved by delta and clamped to the scale.
func (s Slider) Step(delta int) int {
	return max(s.Min, min(s.Max, s.Value+delta))
}

// View renders the track with a knob at the current value followed by
// the display text.
func (s Slider) View(display string, focused bool) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d ", s.Min)))

	knob := lipgloss.NewStyle().Foreground(theme.Secondary)
	if focused {
		knob = theme.Focused
	}
	for v := s.Min; v <= s.Max; v++ {
		switch {
		case v == s.Value:
			b.WriteString(knob.Render("●"))
		case v < s.Value:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("━━"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("──"))
		}
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %d", s.Max)))
	b.WriteString("   " + theme.Label.Render(display))
	return b.String()
}
