// Package survey is the step-by-step form screen.
package survey

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/form"
	"github.com/abhisek/careerform/internal/record"
	"github.com/abhisek/careerform/internal/router"
	"github.com/abhisek/careerform/internal/screen"
	"github.com/abhisek/careerform/internal/session"
	"github.com/abhisek/careerform/internal/submit"
	"github.com/abhisek/careerform/internal/ui/components"
	"github.com/abhisek/careerform/internal/ui/layout"
	"github.com/abhisek/careerform/internal/wizard"
)

const spinnerInterval = 120 * time.Millisecond

type overlay int

const (
	overlayNone overlay = iota
	overlayBusy
	overlayError
	overlayConfirmClear
)

// DoneFactory builds the screen shown after a record is delivered.
type DoneFactory func(rec record.FormRecord) screen.Screen

// SurveyScreen walks the respondent through the steps of the form.
type SurveyScreen struct {
	ctx    context.Context
	sess   *session.Session
	logger *zap.Logger
	onDone DoneFactory

	step   int
	rows   []form.Spec
	focus  int
	inputs map[form.Field]*components.TextInput
	lists  map[form.Field]*components.OptionList

	notice  string
	note    string
	overlay overlay
	errText string
	spinner int
}

var _ screen.Screen = (*SurveyScreen)(nil)

// New creates the form screen on the session's current step.
func New(ctx context.Context, sess *session.Session, logger *zap.Logger, onDone DoneFactory) *SurveyScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SurveyScreen{
		ctx:    ctx,
		sess:   sess,
		logger: logger.Named("survey"),
		onDone: onDone,
	}
	s.rebuild()
	return s
}

func (s *SurveyScreen) Title() string {
	return form.StepTitle(s.step)
}

// Status shows the step counter in the header.
func (s *SurveyScreen) Status() string {
	return s.sess.Machine().ProgressText()
}

func (s *SurveyScreen) Init() tea.Cmd {
	return s.focusCurrent()
}

// rebuild lays out the rows of the session's current step. Focus stays on
// the same field when it is still shown.
func (s *SurveyScreen) rebuild() {
	var focused form.Field
	if spec, ok := s.focusedSpec(); ok {
		focused = spec.Field
	}
	stepChanged := s.step != s.sess.Machine().Current()
	s.step = s.sess.Machine().Current()

	reg := s.sess.Registry()
	s.rows = s.rows[:0]
	s.inputs = make(map[form.Field]*components.TextInput)
	s.lists = make(map[form.Field]*components.OptionList)

	for _, spec := range form.StepFields(s.step) {
		if spec.Kind == form.KindDerived {
			continue
		}
		if spec.Field == form.CurrentJobRole && !s.sess.JobRoleVisible() {
			continue
		}
		s.rows = append(s.rows, spec)

		switch spec.Kind {
		case form.KindText, form.KindInt, form.KindFloat:
			in := components.NewTextInput(spec.Placeholder, reg.Value(spec.Field), inputMode(spec.Kind), spec.MaxLen)
			s.inputs[spec.Field] = &in
		case form.KindMulti, form.KindRadio:
			l := components.NewOptionList(spec.Options, spec.Kind == form.KindMulti, 6)
			s.lists[spec.Field] = &l
		}
	}

	s.focus = 0
	if !stepChanged {
		for i, spec := range s.rows {
			if spec.Field == focused {
				s.focus = i
				break
			}
		}
	}
}

func inputMode(k form.Kind) components.InputMode {
	switch k {
	case form.KindInt:
		return components.ModeInteger
	case form.KindFloat:
		return components.ModeDecimal
	}
	return components.ModeText
}

func (s *SurveyScreen) focusedSpec() (form.Spec, bool) {
	if s.focus < 0 || s.focus >= len(s.rows) {
		return form.Spec{}, false
	}
	return s.rows[s.focus], true
}

func (s *SurveyScreen) focusedInput() *components.TextInput {
	spec, ok := s.focusedSpec()
	if !ok {
		return nil
	}
	return s.inputs[spec.Field]
}

func (s *SurveyScreen) focusedList() *components.OptionList {
	spec, ok := s.focusedSpec()
	if !ok {
		return nil
	}
	return s.lists[spec.Field]
}

// focusCurrent moves keyboard focus to the input of the focused row.
func (s *SurveyScreen) focusCurrent() tea.Cmd {
	for _, in := range s.inputs {
		in.Blur()
	}
	if in := s.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

func (s *SurveyScreen) moveFocus(delta int) tea.Cmd {
	if len(s.rows) == 0 {
		return nil
	}
	s.focus = max(0, min(len(s.rows)-1, s.focus+delta))
	return s.focusCurrent()
}

func (s *SurveyScreen) scheduleSave(tag uint64) tea.Cmd {
	return tea.Tick(s.sess.SaveDelay(), func(time.Time) tea.Msg {
		return saveDueMsg{tag: tag}
	})
}

func (s *SurveyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case saveDueMsg:
		saved, err := s.sess.SaveIfDue(s.ctx, msg.tag)
		if err != nil {
			s.logger.Warn("save draft", zap.Error(err))
			s.note = "Draft not saved"
		} else if saved {
			s.note = "Draft saved"
		}
		return s, nil

	case spinnerTickMsg:
		if s.overlay != overlayBusy {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case submitResultMsg:
		return s, s.handleSubmitResult(msg)

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)

	case tea.PasteMsg:
		return s, s.paste(msg)
	}

	if in := s.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SurveyScreen) handleKey(k tea.KeyPressMsg) tea.Cmd {
	switch s.overlay {
	case overlayBusy:
		return nil
	case overlayError:
		switch k.String() {
		case "enter", "esc", "space":
			s.overlay = overlayNone
			s.errText = ""
		}
		return nil
	case overlayConfirmClear:
		switch k.String() {
		case "y", "Y":
			s.overlay = overlayNone
			return s.clear()
		case "n", "N", "esc":
			s.overlay = overlayNone
		}
		return nil
	}

	if l := s.focusedList(); l != nil && l.Filtering() {
		*l = l.UpdateFilter(k)
		return nil
	}

	switch k.String() {
	case "ctrl+n":
		return s.next()
	case "ctrl+b":
		return s.back()
	case "ctrl+s":
		if s.sess.Machine().IsFinal() {
			return s.submit()
		}
		return nil
	case "ctrl+r":
		s.overlay = overlayConfirmClear
		return nil
	case "tab":
		return s.moveFocus(1)
	case "shift+tab":
		return s.moveFocus(-1)
	case "down":
		if l := s.focusedList(); l != nil && l.Move(1) {
			return nil
		}
		return s.moveFocus(1)
	case "up":
		if l := s.focusedList(); l != nil && l.Move(-1) {
			return nil
		}
		return s.moveFocus(-1)
	}

	spec, ok := s.focusedSpec()
	if !ok {
		return nil
	}

	switch spec.Kind {
	case form.KindSelect:
		switch k.String() {
		case "left":
			return s.cycle(spec, -1)
		case "right", "space", "enter":
			return s.cycle(spec, 1)
		}
	case form.KindSlider:
		switch k.String() {
		case "left":
			return s.adjust(spec, -1)
		case "right":
			return s.adjust(spec, 1)
		}
	case form.KindMulti, form.KindRadio:
		l := s.lists[spec.Field]
		switch k.String() {
		case "/":
			l.StartFilter()
		case "space", "enter":
			return s.pick(spec, l)
		}
	default:
		if k.String() == "enter" {
			return s.moveFocus(1)
		}
		return s.typeInto(spec, k)
	}
	return nil
}

// paste inserts clipboard text into the focused text field.
func (s *SurveyScreen) paste(msg tea.PasteMsg) tea.Cmd {
	if s.overlay != overlayNone {
		return nil
	}
	spec, ok := s.focusedSpec()
	if !ok {
		return nil
	}
	return s.typeInto(spec, msg)
}

// typeInto forwards a key press or paste to the field's input and records
// the resulting value.
func (s *SurveyScreen) typeInto(spec form.Spec, msg tea.Msg) tea.Cmd {
	in := s.inputs[spec.Field]
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() == s.sess.Registry().Value(spec.Field) {
		return cmd
	}
	return tea.Batch(cmd, s.edit(spec.Field, func() uint64 {
		return s.sess.SetValue(spec.Field, in.Value())
	}))
}

// edit applies a change through the session and schedules the draft save.
func (s *SurveyScreen) edit(f form.Field, apply func() uint64) tea.Cmd {
	tag := apply()
	s.notice = ""
	s.note = ""
	if f == form.CurrentStatus {
		s.rebuild()
	}
	return s.scheduleSave(tag)
}

func (s *SurveyScreen) cycle(spec form.Spec, delta int) tea.Cmd {
	opts := spec.Options
	if len(opts) == 0 {
		return nil
	}
	i := slices.Index(opts, s.sess.Registry().Selected(spec.Field))
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = len(opts) - 1
	default:
		i = (i + delta + len(opts)) % len(opts)
	}
	return s.edit(spec.Field, func() uint64 { return s.sess.Choose(spec.Field, opts[i]) })
}

func (s *SurveyScreen) adjust(spec form.Spec, delta int) tea.Cmd {
	cur := form.ParseInt(s.sess.Registry().Value(spec.Field))
	if cur == 0 {
		cur = spec.Default
	}
	next := components.Slider{Min: spec.Min, Max: spec.Max, Value: cur}.Step(delta)
	if next == cur {
		return nil
	}
	return s.edit(spec.Field, func() uint64 { return s.sess.SetValue(spec.Field, strconv.Itoa(next)) })
}

func (s *SurveyScreen) pick(spec form.Spec, l *components.OptionList) tea.Cmd {
	opt, ok := l.Current()
	if !ok {
		return nil
	}
	if spec.Kind == form.KindMulti {
		return s.edit(spec.Field, func() uint64 { return s.sess.Toggle(spec.Field, opt) })
	}
	return s.edit(spec.Field, func() uint64 { return s.sess.Choose(spec.Field, opt) })
}

func (s *SurveyScreen) next() tea.Cmd {
	if s.sess.Machine().IsFinal() {
		return s.submit()
	}
	if err := s.sess.Advance(s.ctx); err != nil {
		s.showValidation(err)
		return nil
	}
	s.notice = ""
	s.note = ""
	s.rebuild()
	return s.focusCurrent()
}

func (s *SurveyScreen) back() tea.Cmd {
	if s.sess.Machine().IsFirst() {
		return nil
	}
	s.sess.Retreat()
	s.notice = ""
	s.rebuild()
	return s.focusCurrent()
}

// showValidation surfaces a blocked step and focuses its first failing row.
func (s *SurveyScreen) showValidation(err error) {
	var verr *wizard.ValidationError
	if !errors.As(err, &verr) {
		s.overlay = overlayError
		s.errText = err.Error()
		return
	}
	s.notice = wizard.MsgBlockingNotice
	for i, spec := range s.rows {
		if verr.Has(spec.Field) {
			s.focus = i
			s.focusCurrent()
			return
		}
	}
}

func (s *SurveyScreen) submit() tea.Cmd {
	rec, err := s.sess.BeginSubmit(s.ctx)
	switch {
	case errors.Is(err, submit.ErrInFlight):
		return nil
	case err != nil:
		s.showValidation(err)
		return nil
	}

	s.overlay = overlayBusy
	s.spinner = 0
	ctx, sess := s.ctx, s.sess
	deliver := func() tea.Msg {
		return submitResultMsg{rec: rec, err: sess.Deliver(ctx, rec)}
	}
	return tea.Batch(deliver, spinnerTick())
}

func (s *SurveyScreen) handleSubmitResult(msg submitResultMsg) tea.Cmd {
	if msg.err != nil {
		s.logger.Warn("submission failed", zap.Error(msg.err))
		s.overlay = overlayError
		s.errText = submit.MsgFailed
		return nil
	}

	s.overlay = overlayNone
	s.sess.Reset()
	s.rebuild()
	if s.onDone == nil {
		return s.focusCurrent()
	}
	done := s.onDone(msg.rec)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: done}
	}
}

func (s *SurveyScreen) clear() tea.Cmd {
	if err := s.sess.Clear(s.ctx); err != nil {
		s.logger.Warn("clear form", zap.Error(err))
		s.overlay = overlayError
		s.errText = "Could not clear the saved draft."
		return nil
	}
	s.step = 0
	s.notice = ""
	s.note = "Form cleared"
	s.rebuild()
	return s.focusCurrent()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// KeyHints returns the footer hints for the focused row.
func (s *SurveyScreen) KeyHints() []layout.KeyHint {
	switch s.overlay {
	case overlayBusy:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	case overlayError:
		return []layout.KeyHint{{Key: "Enter", Description: "Dismiss"}}
	case overlayConfirmClear:
		return []layout.KeyHint{{Key: "y", Description: "Clear"}, {Key: "n", Description: "Cancel"}}
	}

	hints := []layout.KeyHint{{Key: "Tab/↑↓", Description: "Move"}}
	if spec, ok := s.focusedSpec(); ok {
		switch spec.Kind {
		case form.KindSelect:
			hints = append(hints, layout.KeyHint{Key: "←→", Description: "Choose"})
		case form.KindSlider:
			hints = append(hints, layout.KeyHint{Key: "←→", Description: "Adjust"})
		case form.KindMulti, form.KindRadio:
			hints = append(hints,
				layout.KeyHint{Key: "Space", Description: "Pick"},
				layout.KeyHint{Key: "/", Description: "Search"})
		}
	}

	advance := "Next"
	if s.sess.Machine().IsFinal() {
		advance = "Submit"
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+N", Description: advance})
	if !s.sess.Machine().IsFirst() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+B", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Clear"})
}
