package validation

import (
	"errors"
	"testing"
)

type slotReq struct {
	DayOfWeek string `json:"day_of_week" validate:"required,weekday"`
	StartTime string `json:"start_time" validate:"required,clocktime"`
}

type scheduleReq struct {
	TeacherID string    `json:"teacher_id" validate:"required"`
	Slots     []slotReq `json:"slots" validate:"required,min=1,dive"`
}

func TestStruct_Valid(t *testing.T) {
	v := New()

	err := v.Struct(scheduleReq{
		TeacherID: "t1",
		Slots:     []slotReq{{DayOfWeek: "monday", StartTime: "10:00:00"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_FieldErrors(t *testing.T) {
	v := New()

	err := v.Struct(scheduleReq{
		Slots: []slotReq{{DayOfWeek: "Funday", StartTime: "25:00"}},
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(verrs), verrs)
	}

	got := map[string]string{}
	for _, fe := range verrs {
		got[fe.Field] = fe.Message
	}

	if got["teacher_id"] != "teacher_id is required" {
		t.Errorf("unexpected teacher_id message: %q", got["teacher_id"])
	}
	if got["slots[0].day_of_week"] == "" {
		t.Errorf("expected error for slots[0].day_of_week, got %v", got)
	}
	if got["slots[0].start_time"] == "" {
		t.Errorf("expected error for slots[0].start_time, got %v", got)
	}
}
