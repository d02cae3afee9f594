package submit

import (
	"errors"
	"fmt"
)

// MsgFailed is the notice shown when a record could not be delivered.
const MsgFailed = "Failed to submit form. Please try again."

var (
	// ErrInFlight is returned when a submission starts while another one is
	// still being delivered.
	ErrInFlight = errors.New("submission already in progress")

	// ErrNotFinalStep is returned when a submission starts before the last step.
	ErrNotFinalStep = errors.New("submission is only available on the final step")

	// ErrNotSubmitting is returned by Deliver when no submission was begun.
	ErrNotSubmitting = errors.New("no submission in progress")
)

// TransportError wraps a failure to hand the record to the sink. The draft
// is kept so the respondent can retry.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("send record: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx reply from a sink that reads its responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sink responded %d", e.StatusCode)
	}
	return fmt.Sprintf("sink responded %d: %s", e.StatusCode, e.Body)
}
