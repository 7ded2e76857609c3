package domain

// Roles the reporting screens break totals down by.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// Actor is the student or teacher that originated an event.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Name string `json:"name,omitempty"`
}

// Event is the aggregator input. At is kept raw so a malformed instant can
// be reported per event instead of failing the whole batch.
type Event struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	At    string `json:"at"`
	Actor *Actor `json:"actor,omitempty"`
}

// DailyBucketRow is one calendar day of the registrations time series.
type DailyBucketRow struct {
	Date             string           // YYYY-MM-DD in the report timezone
	NewByRole        map[string]int64 // first-seen registrations that day
	NewTotal         int64
	CumulativeByRole map[string]int64 // running totals up to and including Date
	CumulativeTotal  int64
}

type RoleTotals struct {
	ByRole map[string]int64
	Total  int64
}

// SkippedEvent is an event left out of the report and why.
type SkippedEvent struct {
	EventID string
	Reason  string
}

type DailyReport struct {
	Timezone string
	Rows     []DailyBucketRow // ascending by Date
	Totals   RoleTotals       // cumulative totals of the last row
	NewToday int64            // NewTotal of the current day in Timezone, 0 if absent
	Skipped  []SkippedEvent
}
