// Package jsonfile reads an exported event list (a JSON array of events) so
// reports can be produced offline, without a database.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"institute-insights-service/internal/reports/core/domain"
	"institute-insights-service/internal/reports/core/ports"
)

type EventSource struct {
	path string
}

func NewEventSource(path string) *EventSource {
	return &EventSource{path: path}
}

var _ ports.EventReaderPort = (*EventSource)(nil)

func (s *EventSource) ListEvents(ctx context.Context) ([]domain.Event, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []domain.Event
	if err := json.NewDecoder(f).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return events, nil
}
