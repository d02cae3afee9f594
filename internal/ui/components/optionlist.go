package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerform/internal/ui/theme"
)

// OptionList is a scrollable, filterable list of options rendered as
// checkboxes (Multi) or radio buttons.
type OptionList struct {
	Options []string
	Multi   bool
	Rows    int

	cursor    int
	filter    string
	filtering bool
}

// NewOptionList creates a list showing at most rows options at a time.
func NewOptionList(options []string, multi bool, rows int) OptionList {
	if rows <= 0 {
		rows = 6
	}
	return OptionList{Options: options, Multi: multi, Rows: rows}
}

// Visible returns the options matching the filter, case-insensitively.
func (l OptionList) Visible() []string {
	if l.filter == "" {
		return l.Options
	}
	needle := strings.ToLower(l.filter)
	var out []string
	for _, o := range l.Options {
		if strings.Contains(strings.ToLower(o), needle) {
			out = append(out, o)
		}
	}
	return out
}

// Current returns the option under the cursor.
func (l OptionList) Current() (string, bool) {
	vis := l.Visible()
	if l.cursor < 0 || l.cursor >= len(vis) {
		return "", false
	}
	return vis[l.cursor], true
}

// Move shifts the cursor by delta and reports whether it moved. The cursor
// does not wrap, so callers can move focus past the ends.
func (l *OptionList) Move(delta int) bool {
	next := l.cursor + delta
	if next < 0 || next >= len(l.Visible()) {
		return false
	}
	l.cursor = next
	return true
}

// Filtering reports whether keystrokes are going to the filter.
func (l OptionList) Filtering() bool { return l.filtering }

// Filter returns the current filter text.
func (l OptionList) Filter() string { return l.filter }

// StartFilter begins capturing keystrokes into the filter.
func (l *OptionList) StartFilter() {
	l.filtering = true
}

// UpdateFilter applies a key to the filter while filtering. Enter keeps
// the filter, Esc clears it; both stop filtering.
func (l OptionList) UpdateFilter(msg tea.KeyPressMsg) OptionList {
	switch msg.String() {
	case "enter":
		l.filtering = false
	case "esc":
		l.filtering = false
		l.filter = ""
	case "backspace":
		if r := []rune(l.filter); len(r) > 0 {
			l.filter = string(r[:len(r)-1])
		}
	default:
		if msg.Text != "" {
			l.filter += msg.Text
		}
	}
	if n := len(l.Visible()); l.cursor >= n {
		l.cursor = max(0, n-1)
	}
	return l
}

// View renders the window of options around the cursor. marked reports
// whether an option is checked or chosen.
func (l OptionList) View(marked func(string) bool, focused bool) string {
	var b strings.Builder

	if l.filtering || l.filter != "" {
		cursor := ""
		if l.filtering {
			cursor = "▏"
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  search: %s%s", l.filter, cursor)) + "\n")
	}

	vis := l.Visible()
	if len(vis) == 0 {
		b.WriteString(theme.Hint.Render("  no matching options"))
		return b.String()
	}

	start := 0
	if l.cursor >= l.Rows {
		start = l.cursor - l.Rows + 1
	}
	end := min(start+l.Rows, len(vis))

	for i := start; i < end; i++ {
		opt := vis[i]
		box := "( )"
		if l.Multi {
			box = "[ ]"
		}
		if marked(opt) {
			box = "(•)"
			if l.Multi {
				box = "[x]"
			}
		}

		line := fmt.Sprintf("  %s %s", box, opt)
		switch {
		case focused && i == l.cursor:
			line = theme.Focused.Render("▸" + line[1:])
		case marked(opt):
			line = theme.Checked.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(vis) > l.Rows {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(vis))))
	}
	return b.String()
}
