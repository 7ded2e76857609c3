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

func TestCheckAvailability_ReportsConflicts(t *testing.T) {
	repo := &fakeSlotRepo{Reserved: []domain.TimeSlot{
		{DayOfWeek: "Monday", StartTime: "11:00", EndTime: "12:00", GroupID: "g1"},
	}}
	uc := usecase.NewCheckAvailabilityUseCase(repo)

	res, err := uc.Execute(context.Background(), usecase.CheckAvailabilityInput{
		TeacherID: "t1",
		Slots: []domain.TimeSlot{
			{DayOfWeek: "Monday", StartTime: "10:00", EndTime: "11:00"},
			{DayOfWeek: "Monday", StartTime: "10:30", EndTime: "11:30"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastTeacher != "t1" {
		t.Fatalf("expected teacher t1 to be loaded, got %s", repo.lastTeacher)
	}
	if res.AllAvailable || len(res.Available) != 1 || len(res.Conflicts) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCheckAvailability_ExcludeGroup(t *testing.T) {
	repo := &fakeSlotRepo{Reserved: []domain.TimeSlot{
		{DayOfWeek: "Monday", StartTime: "11:00", EndTime: "12:00", GroupID: "g1"},
	}}
	uc := usecase.NewCheckAvailabilityUseCase(repo)

	res, err := uc.Execute(context.Background(), usecase.CheckAvailabilityInput{
		TeacherID:      "t1",
		ExcludeGroupID: "g1",
		Slots:          []domain.TimeSlot{{DayOfWeek: "Monday", StartTime: "11:00", EndTime: "12:00"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AllAvailable {
		t.Fatalf("expected own group to be excluded, got %+v", res)
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestCheckAvailability_MissingTeacher(t *testing.T) {
	repo := &fakeSlotRepo{}
	uc := usecase.NewCheckAvailabilityUseCase(repo)

	_, err := uc.Execute(context.Background(), usecase.CheckAvailabilityInput{TeacherID: "  "})
	if !errors.Is(err, usecase.ErrInvalidScheduleRequest) {
		t.Fatalf("expected ErrInvalidScheduleRequest, got %v", err)
	}
	if repo.lastTeacher != "" {
		t.Fatalf("repository must not be called")
	}
}

func TestCheckAvailability_InvalidSlot(t *testing.T) {
	uc := usecase.NewCheckAvailabilityUseCase(&fakeSlotRepo{})

	_, err := uc.Execute(context.Background(), usecase.CheckAvailabilityInput{
		TeacherID: "t1",
		Slots:     []domain.TimeSlot{{DayOfWeek: "Monday", StartTime: "12:00", EndTime: "11:00"}},
	})
	var se *detector.SlotError
	if !errors.As(err, &se) || se.Index != 0 {
		t.Fatalf("expected *detector.SlotError at index 0, got %v", err)
	}
}

func TestCheckAvailability_RepositoryError(t *testing.T) {
	dbErr := errors.New("db down")
	uc := usecase.NewCheckAvailabilityUseCase(&fakeSlotRepo{ListErr: dbErr})

	_, err := uc.Execute(context.Background(), usecase.CheckAvailabilityInput{TeacherID: "t1"})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
