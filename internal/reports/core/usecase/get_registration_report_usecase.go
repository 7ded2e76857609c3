package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"institute-insights-service/internal/reports/core/aggregator"
	"institute-insights-service/internal/reports/core/domain"
	"institute-insights-service/internal/reports/core/ports"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidOrder     = errors.New("invalid order value")
)

const dateLayout = "2006-01-02"

type GetRegistrationReportInput struct {
	Timezone string // empty -> default timezone of the use case
	From     string // YYYY-MM-DD, optional, inclusive
	To       string // YYYY-MM-DD, optional, inclusive
	Order    string // "", "asc", "desc"
}

type GetRegistrationReportUseCase struct {
	reader          ports.EventReaderPort
	extractor       aggregator.RoleExtractor
	defaultTimezone string
	now             func() time.Time
}

func NewGetRegistrationReportUseCase(reader ports.EventReaderPort, extractor aggregator.RoleExtractor, defaultTimezone string) *GetRegistrationReportUseCase {
	return &GetRegistrationReportUseCase{
		reader:          reader,
		extractor:       extractor,
		defaultTimezone: defaultTimezone,
		now:             time.Now,
	}
}

// Execute validates the query, aggregates the whole event history and then
// trims rows to [From, To]. Totals and NewToday always describe the full history.
func (uc *GetRegistrationReportUseCase) Execute(ctx context.Context, in GetRegistrationReportInput) (*domain.DailyReport, error) {

	if in.From != "" {
		if _, err := time.Parse(dateLayout, in.From); err != nil {
			return nil, fmt.Errorf("%w: from %q", ErrInvalidDateRange, in.From)
		}
	}
	if in.To != "" {
		if _, err := time.Parse(dateLayout, in.To); err != nil {
			return nil, fmt.Errorf("%w: to %q", ErrInvalidDateRange, in.To)
		}
	}
	if in.From != "" && in.To != "" && in.From > in.To {
		return nil, fmt.Errorf("%w: from after to", ErrInvalidDateRange)
	}

	switch in.Order {
	case "", "asc", "desc":
	default:
		return nil, ErrInvalidOrder
	}

	tz := in.Timezone
	if tz == "" {
		tz = uc.defaultTimezone
	}
	// fail before touching storage
	if _, err := aggregator.LoadLocation(tz); err != nil {
		return nil, err
	}

	events, err := uc.reader.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	report, err := aggregator.AggregateDaily(events, aggregator.Options{
		Timezone:  tz,
		Extractor: uc.extractor,
		Now:       uc.now,
	})
	if err != nil {
		return nil, err
	}

	if n := len(report.Skipped); n > 0 {
		log.Printf("registration report: skipped %d of %d events with invalid timestamps", n, len(events))
	}

	report.Rows = trimRows(report.Rows, in.From, in.To)
	if in.Order == "desc" {
		reverseRows(report.Rows)
	}

	return report, nil
}

func trimRows(rows []domain.DailyBucketRow, from, to string) []domain.DailyBucketRow {
	if from == "" && to == "" {
		return rows
	}
	out := make([]domain.DailyBucketRow, 0, len(rows))
	for _, r := range rows {
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		out = append(out, r)
	}
	return out
}

func reverseRows(rows []domain.DailyBucketRow) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
