package submit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerform/internal/form"
	"github.com/abhisek/careerform/internal/form/formtest"
	"github.com/abhisek/careerform/internal/record"
	"github.com/abhisek/careerform/internal/wizard"
)

// recordingSink captures every record it is handed.
type recordingSink struct {
	mu    sync.Mutex
	sent  []record.FormRecord
	err   error
	block chan struct{}
}

func (s *recordingSink) Send(_ context.Context, rec record.FormRecord) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, rec)
	return s.err
}

type fakeDrafts struct {
	cleared int
}

func (d *fakeDrafts) Clear(context.Context) error {
	d.cleared++
	return nil
}

func finalMachine(t *testing.T, reg form.Registry) *wizard.Machine {
	t.Helper()
	m := wizard.New(form.TotalSteps)
	for !m.IsFinal() {
		require.NoError(t, m.Advance(reg))
	}
	return m
}

func newTestController(sink Sink, drafts DraftClearer) *Controller {
	c := NewController(Config{Sink: sink, Drafts: drafts})
	c.grace = 0
	return c
}

func TestSubmitSuccessClearsDraft(t *testing.T) {
	sink := &recordingSink{}
	drafts := &fakeDrafts{}
	c := newTestController(sink, drafts)
	reg := formtest.Complete()

	rec, err := c.Submit(context.Background(), finalMachine(t, reg), reg)
	require.NoError(t, err)

	require.Len(t, sink.sent, 1)
	assert.Equal(t, rec.UserID, sink.sent[0].UserID)
	assert.Equal(t, "Software Engineer", rec.CurrentJobRole)
	assert.Equal(t, 1, drafts.cleared)
	assert.Equal(t, StateSuccess, c.State())
}

func TestSubmitTransportFailureKeepsDraft(t *testing.T) {
	cause := errors.New("connection refused")
	sink := &recordingSink{err: cause}
	drafts := &fakeDrafts{}
	c := newTestController(sink, drafts)
	reg := formtest.Complete()

	_, err := c.Submit(context.Background(), finalMachine(t, reg), reg)
	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 0, drafts.cleared)
	assert.Equal(t, StateFailure, c.State())
	assert.Equal(t, err, c.Err())

	// A manual retry is a fresh pass.
	sink.err = nil
	_, err = c.Submit(context.Background(), finalMachine(t, reg), reg)
	require.NoError(t, err)
	assert.Len(t, sink.sent, 2)
	assert.NotEqual(t, sink.sent[0].UserID, sink.sent[1].UserID)
}

func TestBeginRejectsInvalidFinalStep(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(sink, nil)
	reg := formtest.Complete()
	m := finalMachine(t, reg)
	reg.Select(form.CurrentJobRole, "")

	_, err := c.Begin(m, reg)
	var verr *wizard.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has(form.CurrentJobRole))
	assert.Equal(t, StateIdle, c.State())
	assert.Empty(t, sink.sent)

	msg, ok := m.ErrorFor(form.CurrentJobRole)
	require.True(t, ok)
	assert.Equal(t, wizard.MsgSelectJobRole, msg)
}

func TestBeginRequiresFinalStep(t *testing.T) {
	c := newTestController(&recordingSink{}, nil)
	_, err := c.Begin(wizard.New(form.TotalSteps), formtest.Complete())
	assert.ErrorIs(t, err, ErrNotFinalStep)
}

func TestStudentRecordedAsStudent(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(sink, nil)
	reg := formtest.Complete()
	reg.SetValue(form.CurrentStatus, form.StatusStudent)
	reg.Select(form.CurrentJobRole, "")

	rec, err := c.Submit(context.Background(), finalMachine(t, reg), reg)
	require.NoError(t, err)
	assert.Equal(t, form.StudentJobRole, rec.CurrentJobRole)
}

func TestOverlappingSubmitRejected(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	c := newTestController(sink, nil)
	reg := formtest.Complete()
	m := finalMachine(t, reg)

	rec, err := c.Begin(m, reg)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, c.State())

	done := make(chan error, 1)
	go func() { done <- c.Deliver(context.Background(), rec) }()

	_, err = c.Begin(m, reg)
	assert.ErrorIs(t, err, ErrInFlight)

	close(sink.block)
	require.NoError(t, <-done)
	assert.Len(t, sink.sent, 1)
}

func TestDeliverWithoutBegin(t *testing.T) {
	c := newTestController(&recordingSink{}, nil)
	assert.ErrorIs(t, c.Deliver(context.Background(), record.FormRecord{}), ErrNotSubmitting)
}

func TestDeliverWaitsGraceDelay(t *testing.T) {
	sink := &recordingSink{}
	drafts := &fakeDrafts{}
	c := newTestController(sink, drafts)
	c.grace = time.Hour
	reg := formtest.Complete()

	rec, err := c.Begin(finalMachine(t, reg), reg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = c.Deliver(ctx, rec)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, drafts.cleared)
	assert.Equal(t, StateFailure, c.State())
}

func TestResetAfterFailure(t *testing.T) {
	c := newTestController(&recordingSink{err: errors.New("boom")}, nil)
	reg := formtest.Complete()
	_, err := c.Submit(context.Background(), finalMachine(t, reg), reg)
	require.Error(t, err)

	c.Reset()
	assert.Equal(t, StateIdle, c.State())
	assert.NoError(t, c.Err())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "State(9)", State(9).String())
}
