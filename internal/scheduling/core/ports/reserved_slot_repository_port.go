package ports

import (
	"context"

	"institute-insights-service/internal/scheduling/core/domain"
)

// ReplaceCheck inspects the teacher's reserved slots inside the write
// transaction. A non-nil error aborts the replace and is returned as is.
type ReplaceCheck func(reserved []domain.TimeSlot) error

type ReservedSlotRepositoryPort interface {
	ListReservedSlots(ctx context.Context, teacherID string) ([]domain.TimeSlot, error)
	// ReplaceGroupSlots swaps the group's slots for slots atomically, after
	// check approves the teacher's current reservations.
	ReplaceGroupSlots(ctx context.Context, teacherID, groupID string, slots []domain.TimeSlot, check ReplaceCheck) error
}
