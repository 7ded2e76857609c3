package ports

import (
	"context"

	"institute-insights-service/internal/reports/core/domain"
)

// EventReaderPort supplies the full event history a report is computed from.
// Inferred registrations need an actor's earliest appearance, so readers must
// not pre-filter by date.
type EventReaderPort interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
}
