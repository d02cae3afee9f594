package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerform/internal/form"
)

func fillStep1(reg *form.Values) {
	reg.SetValue(form.Age, "22")
	reg.SetValue(form.Gender, "female")
	reg.SetValue(form.Location, "Chennai")
	reg.SetChecked(form.Languages, []string{"Tamil"})
}

func TestNewStartsAtStepOne(t *testing.T) {
	m := New(form.TotalSteps)
	assert.Equal(t, 1, m.Current())
	assert.Equal(t, 8, m.Total())
	assert.True(t, m.IsFirst())
	assert.False(t, m.IsFinal())
	assert.Equal(t, AffordNext, m.Affordance())
	assert.Equal(t, "Step 1 of 8", m.ProgressText())
	assert.InDelta(t, 0.125, m.Progress(), 1e-9)
}

func TestAdvanceBlockedByMissingFields(t *testing.T) {
	m := New(form.TotalSteps)
	reg := form.NewValues()

	err := m.Advance(reg)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Step)
	assert.True(t, verr.Has(form.Age))
	assert.True(t, verr.Has(form.Languages))
	assert.False(t, verr.Has(form.AcademicConsistency))
	assert.Equal(t, 1, m.Current())

	msg, ok := m.ErrorFor(form.Languages)
	require.True(t, ok)
	assert.Equal(t, MsgSelectOne, msg)
	msg, _ = m.ErrorFor(form.Location)
	assert.Equal(t, MsgRequired, msg)
}

func TestAdvanceIsIdempotentOnUnchangedInput(t *testing.T) {
	m := New(form.TotalSteps)
	reg := form.NewValues()
	reg.SetValue(form.Age, "22")

	first := m.Advance(reg)
	second := m.Advance(reg)
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
	assert.Equal(t, 1, m.Current())

	fillStep1(reg)
	require.NoError(t, m.Advance(reg))
	assert.Equal(t, 2, m.Current())

	// Step 2 is still blank, so repeated attempts never skip ahead.
	for i := 0; i < 3; i++ {
		assert.Error(t, m.Advance(reg))
	}
	assert.Equal(t, 2, m.Current())
}

func TestWhitespaceIsBlank(t *testing.T) {
	reg := form.NewValues()
	fillStep1(reg)
	reg.SetValue(form.Location, "   ")

	verr := Validate(1, reg)
	require.NotNil(t, verr)
	assert.Equal(t, []FieldError{{Field: form.Location, Message: MsgRequired}}, verr.Fields)
}

func TestAdvanceSucceedsAndClearsAnnotations(t *testing.T) {
	var completed []int
	m := New(form.TotalSteps, WithAdvanceHook(func(step int) { completed = append(completed, step) }))
	reg := form.NewValues()

	require.Error(t, m.Advance(reg))
	assert.NotEmpty(t, m.Errors())

	fillStep1(reg)
	require.NoError(t, m.Advance(reg))
	assert.Empty(t, m.Errors())
	assert.Equal(t, []int{1}, completed)
}

func TestClearError(t *testing.T) {
	m := New(form.TotalSteps)
	reg := form.NewValues()
	require.Error(t, m.Advance(reg))

	m.ClearError(form.Age)
	_, ok := m.ErrorFor(form.Age)
	assert.False(t, ok)
	_, ok = m.ErrorFor(form.Gender)
	assert.True(t, ok)
}

func TestRetreatFloorsAtOne(t *testing.T) {
	m := New(form.TotalSteps)
	m.Retreat()
	assert.Equal(t, 1, m.Current())

	reg := form.NewValues()
	fillStep1(reg)
	require.NoError(t, m.Advance(reg))
	m.Retreat()
	assert.Equal(t, 1, m.Current())
}

func TestFinalStepAffordance(t *testing.T) {
	m := New(3)
	m.current = 3
	assert.True(t, m.IsFinal())
	assert.Equal(t, AffordSubmit, m.Affordance())
	assert.Equal(t, "Submit", m.Affordance().String())
}

func TestAdvanceCapsAtTotal(t *testing.T) {
	m := New(form.TotalSteps)
	m.current = form.TotalSteps
	reg := form.NewValues()
	reg.SetValue(form.CurrentStatus, form.StatusStudent)

	require.NoError(t, m.Advance(reg))
	assert.Equal(t, form.TotalSteps, m.Current())
}

func TestJobRoleRequiredWhenWorking(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		role    string
		wantErr bool
	}{
		{"working without role", form.StatusWorking, "", true},
		{"working with role", form.StatusWorking, "Consultant", false},
		{"student without role", form.StatusStudent, "", false},
		{"student with stale role", form.StatusStudent, "Consultant", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := form.NewValues()
			reg.SetValue(form.CurrentStatus, tt.status)
			reg.Select(form.CurrentJobRole, tt.role)

			verr := Validate(form.TotalSteps, reg)
			if !tt.wantErr {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.True(t, verr.Has(form.CurrentJobRole))
		})
	}
}

func TestJobRoleOnlyCheckedOnStatusStep(t *testing.T) {
	reg := form.NewValues()
	fillStep1(reg)
	reg.SetValue(form.CurrentStatus, form.StatusWorking)

	assert.Nil(t, Validate(1, reg))
}

func TestResetReturnsToStepOne(t *testing.T) {
	m := New(form.TotalSteps)
	reg := form.NewValues()
	fillStep1(reg)
	require.NoError(t, m.Advance(reg))
	require.Error(t, m.Advance(reg))

	m.Reset()
	assert.Equal(t, 1, m.Current())
	assert.Empty(t, m.Errors())
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{Step: 3, Fields: []FieldError{
		{Field: form.TechnicalSkills, Message: MsgSelectOne},
		{Field: form.SoftSkills, Message: MsgSelectOne},
	}}
	assert.Equal(t, "step 3: missing required fields: technical_skills, soft_skills", verr.Error())
}
