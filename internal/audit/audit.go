package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Event is one append-only record of a state-changing action.
type Event struct {
	ID         int64
	OccurredAt time.Time
	Actor      string
	Action     string
	Detail     string
	Success    bool
}

// Sink receives audit events. Implementations must tolerate being called on
// every attempt, success or failure; callers treat recording as best-effort.
type Sink interface {
	Record(ctx context.Context, event Event) error
}

// Log persists audit events to the audit_events table in the status database.
type Log struct {
	db *sql.DB
}

// NewLog wraps the shared database connection. The table is created by the
// status store's migrations.
func NewLog(db *sql.DB) *Log {
	return &Log{db: db}
}

// Record appends one event.
func (l *Log) Record(ctx context.Context, event Event) error {
	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	_, err := l.db.ExecContext(
		ctx,
		`INSERT INTO audit_events (occurred_at, actor, action, detail, success)
         VALUES (?, ?, ?, ?, ?)`,
		occurredAt.UTC().Format(time.RFC3339Nano),
		event.Actor,
		event.Action,
		event.Detail,
		boolToInt(event.Success),
	)
	if err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}

// List returns the most recent events first, capped at limit (0 means 100).
func (l *Log) List(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := l.db.QueryContext(
		ctx,
		`SELECT id, occurred_at, actor, action, detail, success
         FROM audit_events ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			event      Event
			occurredAt string
			actor      sql.NullString
			detail     sql.NullString
			success    int
		)
		if err := rows.Scan(&event.ID, &occurredAt, &actor, &event.Action, &detail, &success); err != nil {
			return nil, err
		}
		event.Actor = actor.String
		event.Detail = detail.String
		event.Success = success != 0
		if parsed, err := time.Parse(time.RFC3339Nano, occurredAt); err == nil {
			event.OccurredAt = parsed
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Nop is a Sink that drops every event. Useful for tests and callers that
// have no database.
type Nop struct{}

// Record implements Sink.
func (Nop) Record(context.Context, Event) error { return nil }

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
