package components

import (
	"github.com/abhisek/careerform/internal/ui/theme"
)

// Button is a styled navigation button. Hidden buttons render as blank
// space of the same width so the row does not shift.
type Button struct {
	Label  string
	Key    string
	Active bool
	Hidden bool
}

// NewButton creates a new button labelled with its shortcut.
func NewButton(label, key string, active bool) Button {
	return Button{
		Label:  label,
		Key:    key,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label += " (" + b.Key + ")"
	}
	if b.Hidden {
		return theme.ButtonInactive.
			BorderForeground(theme.BgDark).
			Foreground(theme.BgDark).
			Render(label)
	}
	if b.Active {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
