// Package done shows the confirmation after a successful submission.
package done

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerform/internal/record"
	"github.com/abhisek/careerform/internal/router"
	"github.com/abhisek/careerform/internal/screen"
	"github.com/abhisek/careerform/internal/ui/layout"
	"github.com/abhisek/careerform/internal/ui/theme"
)

// DoneScreen confirms a delivered record. Any key starts a new, blank form.
type DoneScreen struct {
	rec         record.FormRecord
	formFactory func() screen.Screen
	leaving     bool
}

var _ screen.Screen = (*DoneScreen)(nil)

// New creates the confirmation for rec.
func New(rec record.FormRecord, formFactory func() screen.Screen) *DoneScreen {
	return &DoneScreen{rec: rec, formFactory: formFactory}
}

func (d *DoneScreen) Title() string {
	return "Submitted"
}

func (d *DoneScreen) Init() tea.Cmd {
	return nil
}

func (d *DoneScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}
	if k.String() == "q" {
		return d, tea.Quit
	}
	if d.leaving {
		return d, nil
	}
	d.leaving = true
	next := d.formFactory()
	return d, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (d *DoneScreen) View(width, height int) string {
	lines := []string{
		theme.Title.Render("✓ Thank you!"),
		"",
		theme.Body.Render("Your answers were submitted."),
		"",
		theme.Hint.Render("Reference: ") + theme.Label.Render(d.rec.UserID),
	}
	if d.rec.Timestamp != "" {
		lines = append(lines, theme.Hint.Render("Submitted at: ")+theme.Label.Render(d.rec.Timestamp))
	}

	card := theme.SuccessCard.Render(strings.Join(lines, "\n"))
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("press any key to fill in another response, q to quit")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, card, "", hint))
}

func (d *DoneScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Any key", Description: "New response"},
		{Key: "q", Description: "Quit"},
	}
}
