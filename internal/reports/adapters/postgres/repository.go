package postgres

import (
	"context"
	"database/sql"
	"time"

	"institute-insights-service/internal/reports/core/domain"
	"institute-insights-service/internal/reports/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type EventReader struct {
	db DB
}

func NewEventReader(db DB) *EventReader {
	return &EventReader{db: db}
}

var _ ports.EventReaderPort = (*EventReader)(nil)

const listEventsSQL = `
SELECT
    id,
    event_type,
    actor_id,
    actor_role,
    actor_name,
    occurred_at
FROM activity_events
ORDER BY occurred_at, id`

func (r *EventReader) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			id, eventType                 string
			actorID, actorRole, actorName sql.NullString
			occurredAt                    time.Time
		)
		if err := rows.Scan(&id, &eventType, &actorID, &actorRole, &actorName, &occurredAt); err != nil {
			return nil, err
		}

		e := domain.Event{
			ID:   id,
			Type: eventType,
			At:   occurredAt.UTC().Format(time.RFC3339Nano),
		}
		if actorID.Valid && actorID.String != "" {
			e.Actor = &domain.Actor{
				ID:   actorID.String,
				Role: actorRole.String,
				Name: actorName.String,
			}
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
