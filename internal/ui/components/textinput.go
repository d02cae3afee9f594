package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerform/internal/ui/theme"
)

// InputMode restricts which characters a TextInput accepts.
type InputMode int

const (
	ModeText InputMode = iota
	ModeInteger
	ModeDecimal
)

// TextInput wraps bubbles/textinput with survey styling.
type TextInput struct {
	Model textinput.Model
	Mode  InputMode
	Limit int
}

// NewTextInput creates a blurred input holding value. limit caps the
// length when positive.
func NewTextInput(placeholder, value string, mode InputMode, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.SetValue(value)

	return TextInput{
		Model: ti,
		Mode:  mode,
		Limit: limit,
	}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Accepts reports whether text may be typed in this input's mode.
func (t TextInput) Accepts(text string) bool {
	switch t.Mode {
	case ModeInteger:
		for _, r := range text {
			if r < '0' || r > '9' {
				return false
			}
		}
	case ModeDecimal:
		dots := strings.Count(t.Model.Value(), ".")
		for _, r := range text {
			if r == '.' {
				dots++
				if dots > 1 {
					return false
				}
				continue
			}
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// Update handles messages. Key presses and pastes the mode rejects are
// dropped whole.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.Text != "" && !t.Accepts(msg.Text) {
			return t, nil
		}
	case tea.PasteMsg:
		if !t.Accepts(msg.Content) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input inside a one-line box.
func (t TextInput) View(width int) string {
	border := theme.Border
	if t.Model.Focused() {
		border = theme.Accent
	}
	if width < 10 {
		width = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(border).
		Width(width).
		Render(t.Model.View())
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
