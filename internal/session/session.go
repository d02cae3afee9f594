// Package session owns one in-progress survey: its field values, its step
// position and the draft and submission plumbing behind them.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/derive"
	"github.com/abhisek/careerform/internal/draft"
	"github.com/abhisek/careerform/internal/form"
	"github.com/abhisek/careerform/internal/record"
	"github.com/abhisek/careerform/internal/submit"
	"github.com/abhisek/careerform/internal/wizard"
)

// Config holds the collaborators of a Session.
type Config struct {
	Drafts     *draft.Adapter
	Controller *submit.Controller
	Debounce   time.Duration
	Logger     *zap.Logger
}

// Session is the single owner of a registry and a step machine. All methods
// except Deliver must be called from one goroutine.
type Session struct {
	values     *form.Values
	machine    *wizard.Machine
	drafts     *draft.Adapter
	controller *submit.Controller
	debounce   *draft.Debouncer
	logger     *zap.Logger
}

// New returns a session on a blank form at step 1.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("session")

	s := &Session{
		values:     form.NewValues(),
		drafts:     cfg.Drafts,
		controller: cfg.Controller,
		debounce:   draft.NewDebouncer(cfg.Debounce),
		logger:     logger,
	}
	s.machine = wizard.New(form.TotalSteps, wizard.WithAdvanceHook(func(completed int) {
		logger.Debug("step completed", zap.Int("step", completed))
	}))
	derive.Apply(s.values)
	return s
}

// Registry exposes the field values for reading.
func (s *Session) Registry() form.Registry { return s.values }

// Machine exposes the step state.
func (s *Session) Machine() *wizard.Machine { return s.machine }

// SaveDelay is the debounce interval for draft saves.
func (s *Session) SaveDelay() time.Duration { return s.debounce.Delay() }

// Restore loads the saved draft, if any, and reports whether it applied.
// The job-role rule and derived fields are re-evaluated afterwards.
func (s *Session) Restore(ctx context.Context) bool {
	if s.drafts == nil {
		return false
	}
	ok := s.drafts.Load(ctx, s.values)
	s.syncJobRole()
	derive.Apply(s.values)
	return ok
}

// SetValue writes a scalar field, truncating text to the field's length
// limit. It returns the tag of the draft save it scheduled.
func (s *Session) SetValue(f form.Field, v string) uint64 {
	if spec, ok := form.Lookup(f); ok && spec.MaxLen > 0 && utf8.RuneCountInString(v) > spec.MaxLen {
		v = string([]rune(v)[:spec.MaxLen])
	}
	s.values.SetValue(f, v)
	return s.edited(f)
}

// Toggle flips an option of a checkbox group and returns the save tag.
func (s *Session) Toggle(f form.Field, option string) uint64 {
	s.values.Toggle(f, option)
	return s.edited(f)
}

// Choose selects one option of a select or radio field and returns the
// save tag.
func (s *Session) Choose(f form.Field, option string) uint64 {
	s.values.Select(f, option)
	return s.edited(f)
}

func (s *Session) edited(f form.Field) uint64 {
	s.machine.ClearError(f)
	if f == form.CurrentStatus {
		s.syncJobRole()
	}
	if derive.Affects(f) {
		derive.Apply(s.values)
	}
	return s.debounce.Schedule()
}

// syncJobRole clears the job role whenever the respondent is not working.
func (s *Session) syncJobRole() {
	if s.values.Value(form.CurrentStatus) != form.StatusWorking {
		s.values.Select(form.CurrentJobRole, "")
		s.machine.ClearError(form.CurrentJobRole)
	}
}

// JobRoleVisible reports whether the job-role question applies.
func (s *Session) JobRoleVisible() bool {
	return s.values.Value(form.CurrentStatus) == form.StatusWorking
}

// Advance validates the current step and moves forward, saving the draft
// on success. A failed save is logged and does not block navigation.
func (s *Session) Advance(ctx context.Context) error {
	if err := s.machine.Advance(s.values); err != nil {
		return err
	}
	s.debounce.Cancel()
	if err := s.SaveDraft(ctx); err != nil {
		s.logger.Warn("save draft after advance", zap.Error(err))
	}
	return nil
}

// Retreat moves back one step.
func (s *Session) Retreat() {
	s.machine.Retreat()
}

// SaveDraft writes the draft immediately.
func (s *Session) SaveDraft(ctx context.Context) error {
	if s.drafts == nil {
		return nil
	}
	return s.drafts.Save(ctx, s.values)
}

// SaveIfDue saves the draft when tag is the latest scheduled save. It
// reports whether a save was attempted.
func (s *Session) SaveIfDue(ctx context.Context, tag uint64) (bool, error) {
	if !s.debounce.Due(tag) {
		return false, nil
	}
	return true, s.SaveDraft(ctx)
}

// Reset returns to a blank form at step 1 without touching the stored draft.
func (s *Session) Reset() {
	s.debounce.Cancel()
	s.values.Reset()
	derive.Apply(s.values)
	s.machine.Reset()
	if s.controller != nil {
		s.controller.Reset()
	}
}

// Clear resets the form and deletes the stored draft.
func (s *Session) Clear(ctx context.Context) error {
	s.Reset()
	if s.drafts == nil {
		return nil
	}
	if err := s.drafts.Clear(ctx); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// BeginSubmit validates the final step and assembles the record. Pending
// edits are flushed to the draft first so a failed delivery loses nothing.
func (s *Session) BeginSubmit(ctx context.Context) (record.FormRecord, error) {
	rec, err := s.controller.Begin(s.machine, s.values)
	if err != nil {
		return record.FormRecord{}, err
	}
	s.debounce.Cancel()
	if err := s.SaveDraft(ctx); err != nil {
		s.logger.Warn("save draft before submit", zap.Error(err))
	}
	return rec, nil
}

// Deliver sends rec. It may run off the session goroutine.
func (s *Session) Deliver(ctx context.Context, rec record.FormRecord) error {
	return s.controller.Deliver(ctx, rec)
}

// SubmitState returns the controller's lifecycle state.
func (s *Session) SubmitState() submit.State {
	return s.controller.State()
}

// SliderDisplay renders a slider's current value against its maximum.
func (s *Session) SliderDisplay(f form.Field) string {
	spec, ok := form.Lookup(f)
	if !ok || spec.Kind != form.KindSlider {
		return ""
	}
	return fmt.Sprintf("%s/%d", s.values.Value(f), spec.Max)
}

// CharCount renders the live character counter of a limited text field.
func (s *Session) CharCount(f form.Field) string {
	spec, ok := form.Lookup(f)
	if !ok || spec.MaxLen == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", utf8.RuneCountInString(s.values.Value(f)), spec.MaxLen)
}

// MultiSummary is the collapsed label of a checkbox group.
func (s *Session) MultiSummary(f form.Field) string {
	if n := len(s.values.Checked(f)); n > 0 {
		return fmt.Sprintf("%d selected", n)
	}
	spec, ok := form.Lookup(f)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Select %s...", strings.ToLower(spec.Label))
}

// FlushPending writes the draft now if a debounced save is still waiting.
func (s *Session) FlushPending(ctx context.Context) error {
	if !s.debounce.Pending() {
		return nil
	}
	s.debounce.Cancel()
	return s.SaveDraft(ctx)
}
