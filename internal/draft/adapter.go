// Package draft persists the in-progress survey answers so an interrupted
// session can pick up where it left off.
package draft

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/store"
)

// Key is the fixed storage key the draft lives under.
const Key = "careerFormData"

// Document is the part of the field registry the adapter needs.
type Document interface {
	Snapshot() map[string]any
	Restore(snap map[string]any) int
}

// CorruptError reports a stored draft that could not be decoded or does
// not match the expected shape.
type CorruptError struct {
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt draft: %v", e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// Adapter reads and writes the draft through a DraftRepo.
type Adapter struct {
	repo   store.DraftRepo
	logger *zap.Logger
}

// NewAdapter returns an Adapter over repo. A nil logger discards output.
func NewAdapter(repo store.DraftRepo, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{repo: repo, logger: logger.Named("draft")}
}

// Save overwrites the stored draft with the current field values.
func (a *Adapter) Save(ctx context.Context, doc Document) error {
	data, err := json.Marshal(doc.Snapshot())
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := a.repo.Put(ctx, Key, data); err != nil {
		return err
	}
	a.logger.Debug("draft saved", zap.Int("bytes", len(data)))
	return nil
}

// Read returns the stored draft, or nil when none exists. A draft that is
// not valid JSON or fails the schema check yields a *CorruptError.
func (a *Adapter) Read(ctx context.Context) (map[string]any, error) {
	data, err := a.repo.Get(ctx, Key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &CorruptError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateDocument(parsed); err != nil {
		return nil, &CorruptError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return parsed.(map[string]any), nil
}

// Load rehydrates doc from the stored draft and reports whether anything
// was restored. Missing drafts are a no-op; unreadable ones are logged and
// ignored so the form starts blank.
func (a *Adapter) Load(ctx context.Context, doc Document) bool {
	snap, err := a.Read(ctx)
	if err != nil {
		a.logger.Warn("ignoring stored draft", zap.Error(err))
		return false
	}
	if snap == nil {
		return false
	}
	n := doc.Restore(snap)
	a.logger.Debug("draft restored", zap.Int("fields", n))
	return n > 0
}

// Clear deletes the stored draft.
func (a *Adapter) Clear(ctx context.Context) error {
	return a.repo.Delete(ctx, Key)
}
