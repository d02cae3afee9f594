package survey

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerform/internal/form"
	"github.com/abhisek/careerform/internal/ui/components"
	"github.com/abhisek/careerform/internal/ui/layout"
	"github.com/abhisek/careerform/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *SurveyScreen) View(width, height int) string {
	if layout.IsTooSmall(width, height+layout.HeaderHeight+layout.FooterHeight) {
		return layout.RenderMinSizeMessage(width, height)
	}

	switch s.overlay {
	case overlayBusy:
		frame := spinnerFrames[s.spinner%len(spinnerFrames)]
		return center(theme.Card.Render(frame+"  Submitting your answers..."), width, height)
	case overlayError:
		body := theme.FieldError.Render("✗ "+s.errText) + "\n\n" + theme.Hint.Render("Press Enter to go back to the form")
		return center(theme.ErrorCard.Render(body), width, height)
	case overlayConfirmClear:
		body := theme.Title.Render("Clear the form?") + "\n\n" +
			theme.Body.Render("Every answer and the saved draft will be removed.") + "\n\n" +
			theme.Hint.Render("y clear · n cancel")
		return center(theme.Card.Render(body), width, height)
	}

	contentWidth := width - 4
	if !layout.IsCompactWidth(width) {
		contentWidth = min(contentWidth, 96)
	}

	top := s.renderTop(contentWidth)
	nav := s.renderNav()
	room := height - lipgloss.Height(top) - lipgloss.Height(nav) - 2

	body := s.renderRows(contentWidth, room)

	out := lipgloss.JoinVertical(lipgloss.Left, top, "", body, "", nav)
	return lipgloss.NewStyle().PaddingLeft(2).Render(out)
}

func (s *SurveyScreen) renderTop(width int) string {
	m := s.sess.Machine()
	bar := components.NewProgressBar(m.ProgressText(), m.Current(), m.Total(), width)

	lines := []string{
		bar.View(),
		"",
		theme.Title.Render(form.StepTitle(s.step)),
	}
	if s.notice != "" {
		lines = append(lines, theme.FieldError.Render(s.notice))
	}
	if s.note != "" {
		lines = append(lines, theme.Hint.Render(s.note))
	}
	return strings.Join(lines, "\n")
}

// renderRows draws every row and scrolls so the focused row fits in room
// lines.
func (s *SurveyScreen) renderRows(width, room int) string {
	var lines []string
	focusStart, focusEnd := 0, 0

	for i, spec := range s.rows {
		block := s.renderRow(spec, i == s.focus, width)
		if i == s.focus {
			focusStart = len(lines)
		}
		lines = append(lines, strings.Split(block, "\n")...)
		if i == s.focus {
			focusEnd = len(lines)
		}
		lines = append(lines, "")
	}
	lines = append(lines, strings.Split(s.renderDerived(), "\n")...)

	if room <= 0 || len(lines) <= room {
		return strings.Join(lines, "\n")
	}

	start := 0
	if focusEnd > room {
		start = focusEnd - room
	}
	if focusStart < start {
		start = focusStart
	}
	end := min(start+room, len(lines))
	return strings.Join(lines[start:end], "\n")
}

func (s *SurveyScreen) renderRow(spec form.Spec, focused bool, width int) string {
	reg := s.sess.Registry()

	label := theme.Label.Render(spec.Label)
	if focused {
		label = theme.Focused.Render("▸ " + spec.Label)
	}
	if spec.Required {
		label += theme.RequiredMark.Render(" *")
	}

	var control string
	switch spec.Kind {
	case form.KindText, form.KindInt, form.KindFloat:
		control = s.inputs[spec.Field].View(width - 4)
		if count := s.sess.CharCount(spec.Field); count != "" {
			control += "\n" + theme.Hint.Render(count)
		}
	case form.KindSelect:
		val := reg.Selected(spec.Field)
		if val == "" {
			control = theme.Hint.Render("‹ " + placeholder(spec) + " ›")
		} else if focused {
			control = theme.Focused.Render("‹ " + val + " ›")
		} else {
			control = theme.Body.Render("  " + val)
		}
	case form.KindSlider:
		v := form.ParseInt(reg.Value(spec.Field))
		slider := components.Slider{Min: spec.Min, Max: spec.Max, Value: v}
		control = slider.View(s.sess.SliderDisplay(spec.Field), focused)
	case form.KindMulti:
		if focused {
			control = s.lists[spec.Field].View(func(o string) bool {
				return reg.IsChecked(spec.Field, o)
			}, true)
		} else {
			control = theme.Body.Render("  " + s.sess.MultiSummary(spec.Field))
		}
	case form.KindRadio:
		if focused {
			control = s.lists[spec.Field].View(func(o string) bool {
				return reg.Selected(spec.Field) == o
			}, true)
		} else if val := reg.Selected(spec.Field); val != "" {
			control = theme.Body.Render("  " + val)
		} else {
			control = theme.Hint.Render("  " + placeholder(spec))
		}
	}

	out := label + "\n" + control
	if msg, ok := s.sess.Machine().ErrorFor(spec.Field); ok {
		out += "\n" + theme.FieldError.Render("✗ "+msg)
	}
	return out
}

// renderDerived shows the read-only computed values of the step.
func (s *SurveyScreen) renderDerived() string {
	reg := s.sess.Registry()
	var lines []string
	for _, spec := range form.StepFields(s.step) {
		if spec.Kind != form.KindDerived {
			continue
		}
		val := reg.Value(spec.Field)
		if val == "" {
			val = "n/a"
		}
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("%s: %s", spec.Label, val)))
	}
	return strings.Join(lines, "\n")
}

func (s *SurveyScreen) renderNav() string {
	m := s.sess.Machine()
	back := components.NewButton("Back", "ctrl+b", false)
	back.Hidden = m.IsFirst()

	label := "Next"
	if m.IsFinal() {
		label = "Submit"
	}
	next := components.NewButton(label, "ctrl+n", true)

	return lipgloss.JoinHorizontal(lipgloss.Center, back.View(), "  ", next.View())
}

func placeholder(spec form.Spec) string {
	if spec.Placeholder != "" {
		return spec.Placeholder
	}
	return "Select..."
}

func center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
