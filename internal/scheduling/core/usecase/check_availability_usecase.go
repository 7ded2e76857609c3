package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"institute-insights-service/internal/scheduling/core/detector"
	"institute-insights-service/internal/scheduling/core/domain"
	"institute-insights-service/internal/scheduling/core/ports"
)

var (
	ErrInvalidScheduleRequest = errors.New("invalid schedule request")
	ErrSlotsUnavailable       = errors.New("requested slots are unavailable")
)

type CheckAvailabilityInput struct {
	TeacherID      string
	ExcludeGroupID string
	Slots          []domain.TimeSlot
}

type CheckAvailabilityUseCase struct {
	repo ports.ReservedSlotRepositoryPort
}

func NewCheckAvailabilityUseCase(repo ports.ReservedSlotRepositoryPort) *CheckAvailabilityUseCase {
	return &CheckAvailabilityUseCase{repo: repo}
}

// Execute loads the teacher's reserved slots and runs the conflict detector.
// Malformed slots come back as *detector.SlotError.
func (uc *CheckAvailabilityUseCase) Execute(ctx context.Context, in CheckAvailabilityInput) (domain.ConflictResult, error) {
	if strings.TrimSpace(in.TeacherID) == "" {
		return domain.ConflictResult{}, fmt.Errorf("%w: teacher_id is required", ErrInvalidScheduleRequest)
	}

	reserved, err := uc.repo.ListReservedSlots(ctx, in.TeacherID)
	if err != nil {
		return domain.ConflictResult{}, fmt.Errorf("list reserved slots: %w", err)
	}

	result, err := detector.CheckSlotsAvailability(in.Slots, reserved, in.ExcludeGroupID)
	if err != nil {
		return domain.ConflictResult{}, err
	}

	if !result.AllAvailable {
		log.Printf("availability: teacher %s has %d conflicting slot(s)", in.TeacherID, len(result.Conflicts))
	}
	return result, nil
}
