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

type SaveGroupScheduleInput struct {
	TeacherID string
	GroupID   string
	Slots     []domain.TimeSlot
}

// ConflictError is returned when the group's new slots clash with another
// group of the same teacher. It unwraps to ErrSlotsUnavailable.
type ConflictError struct {
	Result domain.ConflictResult
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %d conflicting slot(s)", ErrSlotsUnavailable, len(e.Result.Conflicts))
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotsUnavailable
}

type SaveGroupScheduleUseCase struct {
	repo ports.ReservedSlotRepositoryPort
}

func NewSaveGroupScheduleUseCase(repo ports.ReservedSlotRepositoryPort) *SaveGroupScheduleUseCase {
	return &SaveGroupScheduleUseCase{repo: repo}
}

// Execute replaces the group's reserved slots when none of them overlaps
// another group of the same teacher. The group's current slots are excluded
// from the check so re-saving an unchanged schedule succeeds.
func (uc *SaveGroupScheduleUseCase) Execute(ctx context.Context, in SaveGroupScheduleInput) (domain.ConflictResult, error) {
	if strings.TrimSpace(in.TeacherID) == "" {
		return domain.ConflictResult{}, fmt.Errorf("%w: teacher_id is required", ErrInvalidScheduleRequest)
	}
	if strings.TrimSpace(in.GroupID) == "" {
		return domain.ConflictResult{}, fmt.Errorf("%w: group_id is required", ErrInvalidScheduleRequest)
	}

	slots := make([]domain.TimeSlot, len(in.Slots))
	for i, s := range in.Slots {
		s.GroupID = in.GroupID
		if day, ok := detector.NormalizeDay(s.DayOfWeek); ok {
			s.DayOfWeek = day
		}
		slots[i] = s
	}

	var result domain.ConflictResult
	err := uc.repo.ReplaceGroupSlots(ctx, in.TeacherID, in.GroupID, slots, func(reserved []domain.TimeSlot) error {
		r, err := detector.CheckSlotsAvailability(slots, reserved, in.GroupID)
		if err != nil {
			return err
		}
		result = r
		if !r.AllAvailable {
			return &ConflictError{Result: r}
		}
		return nil
	})
	if err != nil {
		var ce *ConflictError
		if errors.As(err, &ce) {
			log.Printf("schedule: group %s rejected, %d conflicting slot(s)", in.GroupID, len(ce.Result.Conflicts))
			return ce.Result, err
		}
		if errors.Is(err, detector.ErrInvalidTimeSlot) {
			return domain.ConflictResult{}, err
		}
		return domain.ConflictResult{}, fmt.Errorf("replace group slots: %w", err)
	}

	return result, nil
}
