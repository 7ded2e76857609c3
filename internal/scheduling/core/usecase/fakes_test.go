package usecase_test

import (
	"context"

	"institute-insights-service/internal/scheduling/core/domain"
	"institute-insights-service/internal/scheduling/core/ports"
)

// fakeSlotRepo runs the replace check against Reserved, like the real
// repository does inside its transaction.
type fakeSlotRepo struct {
	Reserved  []domain.TimeSlot
	ListErr   error
	ReplaceFn func(teacherID, groupID string, slots []domain.TimeSlot) error

	lastTeacher string
	replaced    []domain.TimeSlot
	replaceHit  bool
}

func (f *fakeSlotRepo) ListReservedSlots(ctx context.Context, teacherID string) ([]domain.TimeSlot, error) {
	f.lastTeacher = teacherID
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Reserved, nil
}

func (f *fakeSlotRepo) ReplaceGroupSlots(ctx context.Context, teacherID, groupID string, slots []domain.TimeSlot, check ports.ReplaceCheck) error {
	f.lastTeacher = teacherID
	if f.ListErr != nil {
		return f.ListErr
	}
	if err := check(f.Reserved); err != nil {
		return err
	}
	if f.ReplaceFn != nil {
		if err := f.ReplaceFn(teacherID, groupID, slots); err != nil {
			return err
		}
	}
	f.replaceHit = true
	f.replaced = slots
	return nil
}
