package postgres

import (
	"context"
	"encoding/json"

	"institute-insights-service/internal/events/core/domain"
	"institute-insights-service/internal/events/core/ports"

	"github.com/lib/pq"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO activity_events (
    id,
    event_type,
    actor_id,
    actor_role,
    actor_name,
    occurred_at,
    tags,
    metadata,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9
)
ON CONFLICT DO NOTHING;
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {

	metadataJSON, err := json.Marshal(e.Metadata)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID,
		e.Type,
		nullIfEmpty(e.ActorID),
		nullIfEmpty(e.ActorRole),
		nullIfEmpty(e.ActorName),
		e.OccurredAt,
		pq.Array(e.Tags),
		metadataJSON,
		e.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate id or dedupe_key (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
