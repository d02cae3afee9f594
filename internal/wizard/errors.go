package wizard

import (
	"fmt"
	"strings"

	"github.com/abhisek/careerform/internal/form"
)

// Annotation messages shown next to a failing field.
const (
	MsgRequired       = "This field is required"
	MsgSelectOne      = "Please select at least one option"
	MsgSelectJobRole  = "Please select your current job role"
	MsgBlockingNotice = "Please fill in all required fields before proceeding."
)

// FieldError is one unmet requirement on a step.
type FieldError struct {
	Field   form.Field
	Message string
}

// ValidationError reports the unmet requirements that block leaving a step.
type ValidationError struct {
	Step   int
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f.Field)
	}
	return fmt.Sprintf("step %d: missing required fields: %s", e.Step, strings.Join(names, ", "))
}

// Has reports whether f is among the failing fields.
func (e *ValidationError) Has(f form.Field) bool {
	for _, fe := range e.Fields {
		if fe.Field == f {
			return true
		}
	}
	return false
}
