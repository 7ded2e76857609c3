// Package detector decides which requested weekly slots collide with slots a
// teacher already has reserved.
package detector

import (
	"errors"
	"fmt"
	"strings"

	"institute-insights-service/internal/platform/clock"
	"institute-insights-service/internal/scheduling/core/domain"
)

var ErrInvalidTimeSlot = errors.New("invalid time slot")

// Collection names used in SlotError.
const (
	Requested = "requested"
	Reserved  = "reserved"
)

var weekdays = map[string]string{
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
	"saturday":  "Saturday",
	"sunday":    "Sunday",
}

// SlotError points at the offending slot so the caller can fix its input.
type SlotError struct {
	Collection string // Requested or Reserved
	Index      int
	Field      string // day_of_week, start_time or end_time
	Value      string
	Reason     string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s slot %d: %s %q %s", ErrInvalidTimeSlot, e.Collection, e.Index, e.Field, e.Value, e.Reason)
}

func (e *SlotError) Unwrap() error {
	return ErrInvalidTimeSlot
}

// span is a slot normalised to a canonical day and a [start, end) minute range.
type span struct {
	day        string
	start, end clock.Minutes
}

// NormalizeDay returns the canonical weekday name ("Monday") for a
// case-insensitive English day name.
func NormalizeDay(day string) (string, bool) {
	d, ok := weekdays[strings.ToLower(strings.TrimSpace(day))]
	return d, ok
}

func normalize(collection string, i int, s domain.TimeSlot) (span, error) {
	day, ok := NormalizeDay(s.DayOfWeek)
	if !ok {
		return span{}, &SlotError{Collection: collection, Index: i, Field: "day_of_week", Value: s.DayOfWeek, Reason: "is not a weekday"}
	}
	start, err := clock.Parse(s.StartTime)
	if err != nil {
		return span{}, &SlotError{Collection: collection, Index: i, Field: "start_time", Value: s.StartTime, Reason: "is not HH:MM or HH:MM:SS"}
	}
	end, err := clock.Parse(s.EndTime)
	if err != nil {
		return span{}, &SlotError{Collection: collection, Index: i, Field: "end_time", Value: s.EndTime, Reason: "is not HH:MM or HH:MM:SS"}
	}
	if start >= end {
		return span{}, &SlotError{Collection: collection, Index: i, Field: "end_time", Value: s.EndTime, Reason: "must be after start_time " + start.String()}
	}
	return span{day: day, start: start, end: end}, nil
}

func (a span) overlaps(b span) bool {
	return a.day == b.day && a.start < b.end && a.end > b.start
}

// CheckSlotsAvailability splits requested into available and conflicting
// slots. Reserved slots owned by excludeGroupID are ignored. Every slot in
// both collections is validated first; the first malformed one fails the call
// with a *SlotError.
func CheckSlotsAvailability(requested, reserved []domain.TimeSlot, excludeGroupID string) (domain.ConflictResult, error) {
	reqSpans := make([]span, len(requested))
	for i, s := range requested {
		sp, err := normalize(Requested, i, s)
		if err != nil {
			return domain.ConflictResult{}, err
		}
		reqSpans[i] = sp
	}

	type reservedSpan struct {
		span
		slot domain.TimeSlot
	}
	resSpans := make([]reservedSpan, 0, len(reserved))
	for i, s := range reserved {
		sp, err := normalize(Reserved, i, s)
		if err != nil {
			return domain.ConflictResult{}, err
		}
		if excludeGroupID != "" && s.GroupID == excludeGroupID {
			continue
		}
		resSpans = append(resSpans, reservedSpan{span: sp, slot: s})
	}

	result := domain.ConflictResult{
		Available: []domain.TimeSlot{},
		Conflicts: []domain.Conflict{},
	}
	for i, req := range reqSpans {
		var hits []domain.TimeSlot
		for _, res := range resSpans {
			if req.overlaps(res.span) {
				hits = append(hits, res.slot)
			}
		}
		if len(hits) == 0 {
			result.Available = append(result.Available, requested[i])
			continue
		}
		result.Conflicts = append(result.Conflicts, domain.Conflict{Slot: requested[i], ConflictsWith: hits})
	}
	result.AllAvailable = len(result.Conflicts) == 0

	return result, nil
}
