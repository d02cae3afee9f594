package survey

import (
	"time"

	"github.com/abhisek/careerform/internal/record"
)

// saveDueMsg fires when a debounced draft save may run.
type saveDueMsg struct {
	tag uint64
}

// submitResultMsg is sent when delivery of a record finishes.
type submitResultMsg struct {
	rec record.FormRecord
	err error
}

// spinnerTickMsg animates the busy indicator.
type spinnerTickMsg time.Time
