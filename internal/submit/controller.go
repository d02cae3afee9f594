// Package submit delivers the finished survey record to its sink.
package submit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/form"
	"github.com/abhisek/careerform/internal/record"
	"github.com/abhisek/careerform/internal/wizard"
)

// GraceDelay is how long the controller waits after a send returns before
// declaring success, leaving room for sinks that acknowledge blindly.
const GraceDelay = 2 * time.Second

// State is the lifecycle of one submission attempt.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DraftClearer removes the persisted draft once a record is delivered.
type DraftClearer interface {
	Clear(ctx context.Context) error
}

// Controller runs submissions: validate, assemble, send, then clear the
// draft. Only one submission may be in flight at a time.
type Controller struct {
	sink      Sink
	drafts    DraftClearer
	assembler *record.Assembler
	logger    *zap.Logger
	grace     time.Duration

	mu      sync.Mutex
	state   State
	lastErr error
}

// Config holds the collaborators of a Controller.
type Config struct {
	Sink      Sink
	Drafts    DraftClearer
	Assembler *record.Assembler
	Logger    *zap.Logger
}

// NewController returns an idle controller.
func NewController(cfg Config) *Controller {
	c := &Controller{
		sink:      cfg.Sink,
		drafts:    cfg.Drafts,
		assembler: cfg.Assembler,
		logger:    cfg.Logger,
		grace:     GraceDelay,
	}
	if c.assembler == nil {
		c.assembler = record.NewAssembler()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	c.logger = c.logger.Named("submit")
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error of the last failed submission, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Begin checks the final step and assembles the record. On success the
// controller is submitting and the caller should show a busy indicator,
// then call Deliver. Validation failures annotate m and return a
// *wizard.ValidationError without changing state.
func (c *Controller) Begin(m *wizard.Machine, reg form.Registry) (record.FormRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return record.FormRecord{}, ErrInFlight
	}
	if !m.IsFinal() {
		return record.FormRecord{}, ErrNotFinalStep
	}
	if err := m.Check(reg); err != nil {
		return record.FormRecord{}, err
	}

	rec := c.assembler.Assemble(reg)
	c.state = StateSubmitting
	c.lastErr = nil
	c.logger.Debug("submission started", zap.String("user_id", rec.UserID))
	return rec, nil
}

// Deliver sends rec once. A send error moves to failure and returns a
// *TransportError with the draft untouched. Otherwise Deliver waits out the
// grace delay, clears the draft and moves to success.
func (c *Controller) Deliver(ctx context.Context, rec record.FormRecord) error {
	if c.State() != StateSubmitting {
		return ErrNotSubmitting
	}

	if err := c.sink.Send(ctx, rec); err != nil {
		return c.fail(&TransportError{Err: err})
	}

	t := time.NewTimer(c.grace)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return c.fail(fmt.Errorf("await acknowledgment: %w", ctx.Err()))
	case <-t.C:
	}

	if c.drafts != nil {
		if err := c.drafts.Clear(ctx); err != nil {
			c.logger.Warn("clear draft after submission", zap.Error(err))
		}
	}

	c.mu.Lock()
	c.state = StateSuccess
	c.mu.Unlock()
	c.logger.Info("submission succeeded", zap.String("user_id", rec.UserID))
	return nil
}

// Submit runs Begin and Deliver back to back.
func (c *Controller) Submit(ctx context.Context, m *wizard.Machine, reg form.Registry) (record.FormRecord, error) {
	rec, err := c.Begin(m, reg)
	if err != nil {
		return record.FormRecord{}, err
	}
	if err := c.Deliver(ctx, rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// Reset acknowledges a finished submission and returns to idle. It has no
// effect while a submission is in flight.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateSubmitting {
		c.state = StateIdle
		c.lastErr = nil
	}
}

func (c *Controller) fail(err error) error {
	c.mu.Lock()
	c.state = StateFailure
	c.lastErr = err
	c.mu.Unlock()
	c.logger.Warn("submission failed", zap.Error(err))
	return err
}
