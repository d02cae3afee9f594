package submit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/record"
	"github.com/abhisek/careerform/internal/store"
)

// History records submission attempts.
type History interface {
	AppendSubmission(ctx context.Context, data store.SubmissionEventData) error
}

type loggingSink struct {
	next    Sink
	logger  *zap.Logger
	history History
}

// WithLogging wraps next so every send is logged and, when history is
// non-nil, recorded as a submission event. Failures to record are logged
// and never change the send outcome.
func WithLogging(next Sink, logger *zap.Logger, history History) Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &loggingSink{next: next, logger: logger.Named("sink"), history: history}
}

func (s *loggingSink) Send(ctx context.Context, rec record.FormRecord) error {
	start := time.Now()
	err := s.next.Send(ctx, rec)
	latency := time.Since(start)

	ev := store.SubmissionEventData{
		UserID:    rec.UserID,
		Status:    store.SubmissionSucceeded,
		LatencyMs: latency.Milliseconds(),
	}
	if err != nil {
		ev.Status = store.SubmissionFailed
		ev.Error = err.Error()
		s.logger.Warn("record send failed",
			zap.String("user_id", rec.UserID),
			zap.Duration("latency", latency),
			zap.Error(err))
	} else {
		s.logger.Info("record sent",
			zap.String("user_id", rec.UserID),
			zap.Duration("latency", latency))
	}

	if s.history != nil {
		if herr := s.history.AppendSubmission(ctx, ev); herr != nil {
			s.logger.Warn("record submission event", zap.Error(herr))
		}
	}
	return err
}
