package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// submissionRepo implements SubmissionRepo on the submission_events table.
type submissionRepo struct {
	db *sql.DB
}

func (r *submissionRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO submission_events (timestamp, user_id, status, error, latency_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.UserID, data.Status, data.Error, data.LatencyMs,
	)
	if err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *submissionRepo) RecentSubmissions(ctx context.Context, limit int) ([]SubmissionEvent, error) {
	query := `SELECT sequence, timestamp, user_id, status, error, latency_ms
		FROM submission_events ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query submission events: %w", err)
	}
	defer rows.Close()

	var events []SubmissionEvent
	for rows.Next() {
		var e SubmissionEvent
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.UserID, &e.Status, &e.Error, &e.LatencyMs); err != nil {
			return nil, fmt.Errorf("scan submission event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submission events: %w", err)
	}
	return events, nil
}
