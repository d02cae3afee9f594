package store

import (
	"context"
	"time"
)

// DraftRepo stores opaque draft documents under string keys.
type DraftRepo interface {
	// Put writes data under key, replacing any previous value.
	Put(ctx context.Context, key string, data []byte) error

	// Get returns the data stored under key, or nil if there is none.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Submission statuses recorded in submission events.
const (
	SubmissionSucceeded = "succeeded"
	SubmissionFailed    = "failed"
)

// SubmissionEventData captures one attempt to deliver a record to the sink.
type SubmissionEventData struct {
	UserID    string
	Status    string
	Error     string
	LatencyMs int64
}

// SubmissionEvent is a recorded submission attempt.
type SubmissionEvent struct {
	Sequence  int64
	Timestamp time.Time
	SubmissionEventData
}

// SubmissionRepo provides append and query access to submission events.
type SubmissionRepo interface {
	// AppendSubmission records a submission attempt.
	AppendSubmission(ctx context.Context, data SubmissionEventData) error

	// RecentSubmissions returns up to limit events, newest first. A limit of
	// zero returns every event.
	RecentSubmissions(ctx context.Context, limit int) ([]SubmissionEvent, error)
}
