// Package wizard implements the step state machine of the survey: which step
// is active, whether it may be left, and which fields are flagged as missing.
package wizard

import (
	"fmt"
	"strings"

	"github.com/abhisek/careerform/internal/form"
)

// Affordance is the primary navigation action offered on a step.
type Affordance int

const (
	AffordNext Affordance = iota
	AffordSubmit
)

func (a Affordance) String() string {
	if a == AffordSubmit {
		return "Submit"
	}
	return "Next"
}

// Option configures a Machine.
type Option func(*Machine)

// WithAdvanceHook registers fn to run after every successful advance with the
// step that was just completed.
func WithAdvanceHook(fn func(completed int)) Option {
	return func(m *Machine) { m.onAdvance = fn }
}

// Machine tracks the active step of a linear chain 1..total.
type Machine struct {
	current   int
	total     int
	errors    map[form.Field]string
	onAdvance func(completed int)
}

// New returns a machine positioned on step 1.
func New(total int, opts ...Option) *Machine {
	if total < 1 {
		total = 1
	}
	m := &Machine{
		current: 1,
		total:   total,
		errors:  make(map[form.Field]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) Current() int  { return m.current }
func (m *Machine) Total() int    { return m.total }
func (m *Machine) IsFirst() bool { return m.current == 1 }
func (m *Machine) IsFinal() bool { return m.current == m.total }

// Affordance returns Submit on the final step and Next elsewhere.
func (m *Machine) Affordance() Affordance {
	if m.IsFinal() {
		return AffordSubmit
	}
	return AffordNext
}

// Advance validates the active step and, when it passes, moves forward one
// step (never past the last). On failure the machine stays put, annotates
// every failing field and returns a *ValidationError.
func (m *Machine) Advance(reg form.Registry) error {
	if err := m.Check(reg); err != nil {
		return err
	}
	completed := m.current
	if m.current < m.total {
		m.current++
	}
	if m.onAdvance != nil {
		m.onAdvance(completed)
	}
	return nil
}

// Check validates the active step without moving. Annotations are replaced
// with the outcome for the step's fields.
func (m *Machine) Check(reg form.Registry) error {
	for _, s := range form.StepFields(m.current) {
		delete(m.errors, s.Field)
	}
	verr := Validate(m.current, reg)
	if verr == nil {
		return nil
	}
	for _, fe := range verr.Fields {
		m.errors[fe.Field] = fe.Message
	}
	return verr
}

// Retreat moves back one step without validation, stopping at step 1.
func (m *Machine) Retreat() {
	if m.current > 1 {
		m.current--
	}
}

// Reset returns to step 1 and drops every annotation.
func (m *Machine) Reset() {
	m.current = 1
	clear(m.errors)
}

// ErrorFor returns the annotation attached to f, if any.
func (m *Machine) ErrorFor(f form.Field) (string, bool) {
	msg, ok := m.errors[f]
	return msg, ok
}

// Errors returns a copy of all current annotations.
func (m *Machine) Errors() map[form.Field]string {
	out := make(map[form.Field]string, len(m.errors))
	for k, v := range m.errors {
		out[k] = v
	}
	return out
}

// ClearError drops the annotation on f; called as soon as f is edited.
func (m *Machine) ClearError(f form.Field) {
	delete(m.errors, f)
}

// Progress returns the completed fraction, current/total.
func (m *Machine) Progress() float64 {
	return float64(m.current) / float64(m.total)
}

// ProgressText renders "Step k of N".
func (m *Machine) ProgressText() string {
	return fmt.Sprintf("Step %d of %d", m.current, m.total)
}

// Validate checks the required fields of step against reg. Required scalars
// must be non-blank and required checkbox groups need at least one member.
// On the step holding the current status, a working respondent must also
// pick a job role.
func Validate(step int, reg form.Registry) *ValidationError {
	var failed []FieldError
	for _, s := range form.StepFields(step) {
		if !s.Required {
			continue
		}
		if s.IsMulti() {
			if len(reg.Checked(s.Field)) == 0 {
				failed = append(failed, FieldError{Field: s.Field, Message: MsgSelectOne})
			}
			continue
		}
		if strings.TrimSpace(reg.Value(s.Field)) == "" {
			failed = append(failed, FieldError{Field: s.Field, Message: MsgRequired})
		}
	}

	if status, ok := form.Lookup(form.CurrentStatus); ok && status.Step == step {
		if reg.Value(form.CurrentStatus) == form.StatusWorking && reg.Selected(form.CurrentJobRole) == "" {
			failed = append(failed, FieldError{Field: form.CurrentJobRole, Message: MsgSelectJobRole})
		}
	}

	if len(failed) == 0 {
		return nil
	}
	return &ValidationError{Step: step, Fields: failed}
}
