package usecase_test

import (
	"context"
	"errors"
	"testing"

	"institute-insights-service/internal/scheduling/core/detector"
	"institute-insights-service/internal/scheduling/core/domain"
	"institute-insights-service/internal/scheduling/core/usecase"
)

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestSaveGroupSchedule_ReplacesWhenAvailable(t *testing.T) {
	repo := &fakeSlotRepo{Reserved: []domain.TimeSlot{
		{DayOfWeek: "Monday", StartTime: "10:00", EndTime: "11:00", GroupID: "g1"},
		{DayOfWeek: "Monday", StartTime: "12:00", EndTime: "13:00", GroupID: "g2"},
	}}
	uc := usecase.NewSaveGroupScheduleUseCase(repo)

	// Re-saving g1 on top of its own slot plus a new one must succeed.
	res, err := uc.Execute(context.Background(), usecase.SaveGroupScheduleInput{
		TeacherID: "t1",
		GroupID:   "g1",
		Slots: []domain.TimeSlot{
			{DayOfWeek: "monday", StartTime: "10:00", EndTime: "11:00"},
			{DayOfWeek: "Monday", StartTime: "11:00", EndTime: "12:00"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AllAvailable || len(res.Available) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !repo.replaceHit || len(repo.replaced) != 2 {
		t.Fatalf("expected 2 slots to be stored, got %+v", repo.replaced)
	}
	for _, s := range repo.replaced {
		if s.GroupID != "g1" || s.DayOfWeek != "Monday" {
			t.Fatalf("expected stored slots to be stamped with g1 and canonical day, got %+v", s)
		}
	}
}

// ------------------------------------------------------------
// CONFLICTS
// ------------------------------------------------------------

func TestSaveGroupSchedule_ConflictAbortsReplace(t *testing.T) {
	repo := &fakeSlotRepo{Reserved: []domain.TimeSlot{
		{DayOfWeek: "Monday", StartTime: "12:00", EndTime: "13:00", GroupID: "g2"},
	}}
	uc := usecase.NewSaveGroupScheduleUseCase(repo)

	res, err := uc.Execute(context.Background(), usecase.SaveGroupScheduleInput{
		TeacherID: "t1",
		GroupID:   "g1",
		Slots:     []domain.TimeSlot{{DayOfWeek: "Monday", StartTime: "12:30", EndTime: "13:30"}},
	})
	if !errors.Is(err, usecase.ErrSlotsUnavailable) {
		t.Fatalf("expected ErrSlotsUnavailable, got %v", err)
	}
	if res.AllAvailable || len(res.Conflicts) != 1 {
		t.Fatalf("expected conflicts in result, got %+v", res)
	}
	if repo.replaceHit {
		t.Fatalf("slots must not be replaced on conflict")
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestSaveGroupSchedule_Validation(t *testing.T) {
	uc := usecase.NewSaveGroupScheduleUseCase(&fakeSlotRepo{})

	if _, err := uc.Execute(context.Background(), usecase.SaveGroupScheduleInput{GroupID: "g1"}); !errors.Is(err, usecase.ErrInvalidScheduleRequest) {
		t.Fatalf("expected ErrInvalidScheduleRequest for missing teacher, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), usecase.SaveGroupScheduleInput{TeacherID: "t1"}); !errors.Is(err, usecase.ErrInvalidScheduleRequest) {
		t.Fatalf("expected ErrInvalidScheduleRequest for missing group, got %v", err)
	}
}

func TestSaveGroupSchedule_InvalidSlot(t *testing.T) {
	repo := &fakeSlotRepo{}
	uc := usecase.NewSaveGroupScheduleUseCase(repo)

	_, err := uc.Execute(context.Background(), usecase.SaveGroupScheduleInput{
		TeacherID: "t1",
		GroupID:   "g1",
		Slots:     []domain.TimeSlot{{DayOfWeek: "Someday", StartTime: "10:00", EndTime: "11:00"}},
	})
	if !errors.Is(err, detector.ErrInvalidTimeSlot) {
		t.Fatalf("expected ErrInvalidTimeSlot, got %v", err)
	}
	if repo.replaceHit {
		t.Fatalf("slots must not be replaced on invalid input")
	}
}

func TestSaveGroupSchedule_RepositoryError(t *testing.T) {
	dbErr := errors.New("insert failed")
	repo := &fakeSlotRepo{ReplaceFn: func(teacherID, groupID string, slots []domain.TimeSlot) error { return dbErr }}
	uc := usecase.NewSaveGroupScheduleUseCase(repo)

	_, err := uc.Execute(context.Background(), usecase.SaveGroupScheduleInput{
		TeacherID: "t1",
		GroupID:   "g1",
		Slots:     []domain.TimeSlot{{DayOfWeek: "Monday", StartTime: "10:00", EndTime: "11:00"}},
	})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
