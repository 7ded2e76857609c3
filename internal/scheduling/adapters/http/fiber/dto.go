package fiber

import (
	"institute-insights-service/internal/platform/validation"
	"institute-insights-service/internal/scheduling/core/domain"
)

type SlotRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required,weekday" example:"Monday"`
	StartTime string `json:"start_time" validate:"required,clocktime" example:"10:00"`
	EndTime   string `json:"end_time" validate:"required,clocktime" example:"11:30"`
}

type CheckAvailabilityRequest struct {
	TeacherID      string        `json:"teacher_id" validate:"required" example:"teacher-42"`
	ExcludeGroupID string        `json:"exclude_group_id,omitempty" example:"group-7"`
	Slots          []SlotRequest `json:"slots" validate:"dive"`
}

type SaveGroupScheduleRequest struct {
	TeacherID string        `json:"teacher_id" validate:"required" example:"teacher-42"`
	Slots     []SlotRequest `json:"slots" validate:"dive"`
}

type SlotResponse struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	GroupID   string `json:"group_id,omitempty"`
}

type ConflictResponse struct {
	Slot          SlotResponse   `json:"slot"`
	ConflictsWith []SlotResponse `json:"conflicts_with"`
}

type AvailabilityResponse struct {
	AllAvailable bool               `json:"all_available"`
	Available    []SlotResponse     `json:"available"`
	Conflicts    []ConflictResponse `json:"conflicts"`
}

type SlotErrorDetail struct {
	Collection string `json:"collection" example:"requested"`
	Index      int    `json:"index" example:"0"`
	Field      string `json:"field" example:"end_time"`
}

type ErrorResponse struct {
	Error   string                  `json:"error" example:"invalid_slot"`
	Message string                  `json:"message,omitempty"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
	Slot    *SlotErrorDetail        `json:"slot,omitempty"`
}

func toDomainSlots(in []SlotRequest) []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(in))
	for i, s := range in {
		out[i] = domain.TimeSlot{DayOfWeek: s.DayOfWeek, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return out
}

func toSlotResponses(in []domain.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(in))
	for _, s := range in {
		out = append(out, SlotResponse{DayOfWeek: s.DayOfWeek, StartTime: s.StartTime, EndTime: s.EndTime, GroupID: s.GroupID})
	}
	return out
}

func toAvailabilityResponse(r domain.ConflictResult) AvailabilityResponse {
	resp := AvailabilityResponse{
		AllAvailable: r.AllAvailable,
		Available:    toSlotResponses(r.Available),
		Conflicts:    make([]ConflictResponse, 0, len(r.Conflicts)),
	}
	for _, c := range r.Conflicts {
		slot := toSlotResponses([]domain.TimeSlot{c.Slot})[0]
		resp.Conflicts = append(resp.Conflicts, ConflictResponse{
			Slot:          slot,
			ConflictsWith: toSlotResponses(c.ConflictsWith),
		})
	}
	return resp
}
