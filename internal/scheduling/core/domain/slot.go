package domain

// TimeSlot is a weekly recurring slot on a teacher's timetable.
// GroupID is only set on reserved slots.
type TimeSlot struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	GroupID   string `json:"group_id,omitempty"`
}

// Conflict is a requested slot together with every reserved slot it overlaps.
type Conflict struct {
	Slot          TimeSlot
	ConflictsWith []TimeSlot
}

type ConflictResult struct {
	Available    []TimeSlot
	Conflicts    []Conflict
	AllAvailable bool
}
