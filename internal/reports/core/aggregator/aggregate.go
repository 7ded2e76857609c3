// Package aggregator turns a flat list of activity events into a per-day,
// per-role registrations series with running totals.
package aggregator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	// zone data is embedded so bucketing never depends on the host
	_ "time/tzdata"

	"institute-insights-service/internal/reports/core/domain"
)

const dayLayout = "2006-01-02"

var (
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrInvalidTimestamp = errors.New("invalid event timestamp")
)

type Options struct {
	// Timezone is an IANA zone name; required. "Local" is rejected.
	Timezone  string
	Extractor RoleExtractor    // defaults to DefaultRules()
	Now       func() time.Time // used for NewToday; defaults to time.Now
}

type registrationKey struct {
	role string
	id   string
}

// AggregateDaily buckets first registrations by calendar day in
// opts.Timezone. Events with a malformed timestamp are listed in
// DailyReport.Skipped; only an invalid timezone fails the call.
func AggregateDaily(events []domain.Event, opts Options) (*domain.DailyReport, error) {
	loc, err := LoadLocation(opts.Timezone)
	if err != nil {
		return nil, err
	}

	extractor := opts.Extractor
	if extractor == nil {
		extractor = DefaultRules()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	regs, skipped := collectRegistrations(events, extractor)
	rows := buildRows(regs, loc)

	report := &domain.DailyReport{
		Timezone: loc.String(),
		Rows:     rows,
		Totals:   domain.RoleTotals{ByRole: map[string]int64{}},
		Skipped:  skipped,
	}

	if len(rows) > 0 {
		last := rows[len(rows)-1]
		report.Totals = domain.RoleTotals{
			ByRole: copyCounts(last.CumulativeByRole),
			Total:  last.CumulativeTotal,
		}
	}

	today := now().In(loc).Format(dayLayout)
	for _, row := range rows {
		if row.Date == today {
			report.NewToday = row.NewTotal
			break
		}
	}

	return report, nil
}

// LoadLocation resolves an explicit IANA zone. Empty and "Local" are refused
// because both would make results depend on the machine.
func LoadLocation(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" || tz == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	return loc, nil
}

func parseInstant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: missing", ErrInvalidTimestamp)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}
	return t, nil
}

// collectRegistrations keeps the earliest instant per (role, id). Explicit
// candidates win over inferred ones regardless of which is earlier.
func collectRegistrations(events []domain.Event, extractor RoleExtractor) (map[registrationKey]time.Time, []domain.SkippedEvent) {
	explicit := make(map[registrationKey]time.Time)
	inferred := make(map[registrationKey]time.Time)
	var skipped []domain.SkippedEvent

	for _, e := range events {
		at, err := parseInstant(e.At)
		if err != nil {
			skipped = append(skipped, domain.SkippedEvent{EventID: e.ID, Reason: err.Error()})
			continue
		}

		c, ok := extractor.Extract(e)
		if !ok || c.Role == "" || c.ActorID == "" {
			continue
		}

		key := registrationKey{role: c.Role, id: c.ActorID}
		if c.Explicit {
			keepEarliest(explicit, key, at)
		} else {
			keepEarliest(inferred, key, at)
		}
	}

	for key, at := range inferred {
		if _, ok := explicit[key]; !ok {
			explicit[key] = at
		}
	}

	return explicit, skipped
}

func keepEarliest(m map[registrationKey]time.Time, key registrationKey, at time.Time) {
	if cur, ok := m[key]; !ok || at.Before(cur) {
		m[key] = at
	}
}

func buildRows(regs map[registrationKey]time.Time, loc *time.Location) []domain.DailyBucketRow {
	if len(regs) == 0 {
		return []domain.DailyBucketRow{}
	}

	roleSet := make(map[string]bool)
	newByDay := make(map[string]map[string]int64)
	for key, at := range regs {
		roleSet[key.role] = true

		day := at.In(loc).Format(dayLayout)
		counts, ok := newByDay[day]
		if !ok {
			counts = make(map[string]int64)
			newByDay[day] = counts
		}
		counts[key.role]++
	}

	roles := sortedKeys(roleSet)

	days := make([]string, 0, len(newByDay))
	for day := range newByDay {
		days = append(days, day)
	}
	// YYYY-MM-DD sorts lexically in chronological order
	sort.Strings(days)

	rows := make([]domain.DailyBucketRow, 0, len(days))
	var prev domain.DailyBucketRow
	for _, day := range days {
		prev = nextRow(prev, day, newByDay[day], roles)
		rows = append(rows, prev)
	}
	return rows
}

// nextRow folds one day onto the previous row and returns a fresh row.
func nextRow(prev domain.DailyBucketRow, date string, added map[string]int64, roles []string) domain.DailyBucketRow {
	row := domain.DailyBucketRow{
		Date:             date,
		NewByRole:        make(map[string]int64, len(roles)),
		CumulativeByRole: make(map[string]int64, len(roles)),
	}
	for _, role := range roles {
		n := added[role]
		row.NewByRole[role] = n
		row.NewTotal += n

		cum := prev.CumulativeByRole[role] + n
		row.CumulativeByRole[role] = cum
		row.CumulativeTotal += cum
	}
	return row
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func copyCounts(m map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
