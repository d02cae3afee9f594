package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestOptionListFilter(t *testing.T) {
	l := NewOptionList([]string{"Python", "Java", "JavaScript", "Go"}, true, 3)
	l.StartFilter()
	for _, r := range "jav" {
		l = l.UpdateFilter(key(r))
	}

	if got := l.Visible(); len(got) != 2 || got[0] != "Java" || got[1] != "JavaScript" {
		t.Fatalf("Visible() = %v, want [Java JavaScript]", got)
	}

	l = l.UpdateFilter(tea.KeyPressMsg{Code: tea.KeyEnter})
	if l.Filtering() {
		t.Error("enter should stop filtering")
	}
	if l.Filter() != "jav" {
		t.Errorf("enter should keep the filter, got %q", l.Filter())
	}

	l.StartFilter()
	l = l.UpdateFilter(tea.KeyPressMsg{Code: tea.KeyEscape})
	if l.Filter() != "" || len(l.Visible()) != 4 {
		t.Error("esc should clear the filter")
	}
}

func TestOptionListCursorClampsAfterFilter(t *testing.T) {
	l := NewOptionList([]string{"a1", "a2", "b1"}, false, 5)
	l.Move(2)
	l.StartFilter()
	l = l.UpdateFilter(key('a'))

	cur, ok := l.Current()
	if !ok || cur != "a2" {
		t.Errorf("Current() = %q, %v; want a2", cur, ok)
	}
}

func TestOptionListMoveStopsAtEnds(t *testing.T) {
	l := NewOptionList([]string{"x", "y"}, false, 5)
	if l.Move(-1) {
		t.Error("moved above the first option")
	}
	if !l.Move(1) {
		t.Error("did not move to the second option")
	}
	if l.Move(1) {
		t.Error("moved past the last option")
	}
}

func TestOptionListViewMarks(t *testing.T) {
	l := NewOptionList([]string{"English", "Hindi"}, true, 5)
	view := l.View(func(o string) bool { return o == "Hindi" }, false)
	if !strings.Contains(view, "[x] Hindi") || !strings.Contains(view, "[ ] English") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestTextInputModes(t *testing.T) {
	tests := []struct {
		mode  InputMode
		value string
		typed string
		want  bool
	}{
		{ModeText, "", "a", true},
		{ModeInteger, "", "7", true},
		{ModeInteger, "", ".", false},
		{ModeInteger, "", "x", false},
		{ModeDecimal, "8", ".", true},
		{ModeDecimal, "8.5", ".", false},
		{ModeDecimal, "", "e", false},
	}
	for _, tt := range tests {
		in := NewTextInput("", tt.value, tt.mode, 0)
		if got := in.Accepts(tt.typed); got != tt.want {
			t.Errorf("mode %d value %q Accepts(%q) = %v, want %v", tt.mode, tt.value, tt.typed, got, tt.want)
		}
	}
}

func TestTextInputPasteFollowsMode(t *testing.T) {
	in := NewTextInput("", "", ModeInteger, 0)
	in.Focus()

	in, _ = in.Update(tea.PasteMsg{Content: "12a"})
	if got := in.Value(); got != "" {
		t.Errorf("rejected paste left %q", got)
	}
	in, _ = in.Update(tea.PasteMsg{Content: "12"})
	if got := in.Value(); got != "12" {
		t.Errorf("Value() = %q, want %q", got, "12")
	}
}

func TestSliderStepClamps(t *testing.T) {
	s := Slider{Min: 1, Max: 5, Value: 5}
	if got := s.Step(1); got != 5 {
		t.Errorf("Step(1) = %d, want 5", got)
	}
	s.Value = 1
	if got := s.Step(-1); got != 1 {
		t.Errorf("Step(-1) = %d, want 1", got)
	}
	if got := s.Step(2); got != 3 {
		t.Errorf("Step(2) = %d, want 3", got)
	}
}

func TestProgressBarPercent(t *testing.T) {
	p := NewProgressBar("Step 2 of 8", 2, 8, 60)
	if p.Percent() != 0.25 {
		t.Errorf("Percent() = %v, want 0.25", p.Percent())
	}
	if !strings.Contains(p.View(), "25%") {
		t.Error("view should show the percentage")
	}
	if (ProgressBar{}).Percent() != 0 {
		t.Error("zero total should be 0%")
	}
}
