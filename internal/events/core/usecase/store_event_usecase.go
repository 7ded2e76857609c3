package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"institute-insights-service/internal/events/core/domain"
	"institute-insights-service/internal/events/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrInvalidTimestamp = errors.New("timestamp must be RFC 3339 with an offset")
	ErrFutureTime       = errors.New("timestamp cannot be in the future")
)

type StoreEventUseCase struct {
	repo ports.EventRepositoryPort
	now  func() time.Time
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo, now: time.Now}
}

type StoreEventInput struct {
	ID        string
	Type      string
	At        string
	ActorID   string
	ActorRole string
	ActorName string
	Tags      []string
	Metadata  map[string]any
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (bool, error) {

	occurredAt, err := uc.validateInput(in)
	if err != nil {
		return false, err
	}

	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.Metadata == nil {
		in.Metadata = map[string]any{}
	}

	e := &domain.Event{
		ID:         in.ID,
		Type:       strings.ToUpper(strings.TrimSpace(in.Type)),
		ActorID:    in.ActorID,
		ActorRole:  strings.ToLower(strings.TrimSpace(in.ActorRole)),
		ActorName:  in.ActorName,
		OccurredAt: occurredAt,
		Tags:       in.Tags,
		Metadata:   in.Metadata,
	}
	e.DedupeKey = buildDedupeKey(e)

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return false, fmt.Errorf("insert event: %w", err)
	}

	return created, nil
}

func buildDedupeKey(e *domain.Event) string {
	// event_type + actor_id + actor_role + unix_timestamp
	return fmt.Sprintf("%s|%s|%s|%d",
		e.Type,
		e.ActorID,
		e.ActorRole,
		e.OccurredAt.Unix(),
	)
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	for i, ev := range in.Events {
		if _, err := uc.validateInput(ev); err != nil {
			return res, fmt.Errorf("event %d: %w", i, err)
		}
	}

	for _, ev := range in.Events {
		ok, err := uc.Execute(ctx, ev)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) (time.Time, error) {

	if strings.TrimSpace(in.Type) == "" {
		return time.Time{}, ErrInvalidEvent
	}
	if in.ActorID != "" && strings.TrimSpace(in.ActorRole) == "" {
		return time.Time{}, ErrInvalidEvent
	}

	at, err := time.Parse(time.RFC3339Nano, in.At)
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}

	if at.After(uc.now()) {
		return time.Time{}, ErrFutureTime
	}

	return at.UTC(), nil
}
