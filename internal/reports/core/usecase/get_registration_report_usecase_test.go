package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"institute-insights-service/internal/reports/core/aggregator"
	"institute-insights-service/internal/reports/core/domain"
)

// fakeEventReader fakes EventReaderPort.
type fakeEventReader struct {
	ListFn func(ctx context.Context) ([]domain.Event, error)
	called bool
}

func (f *fakeEventReader) ListEvents(ctx context.Context) ([]domain.Event, error) {
	f.called = true
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func sampleEvents() []domain.Event {
	student := func(id, at string) domain.Event {
		return domain.Event{ID: id, Type: "STUDENT_REGISTERED", At: at, Actor: &domain.Actor{ID: id, Role: "student"}}
	}
	return []domain.Event{
		student("s1", "2025-08-01T10:00:00Z"),
		student("s2", "2025-08-02T10:00:00Z"),
		student("s3", "2025-08-03T10:00:00Z"),
		student("s4", "2025-08-04T10:00:00Z"),
		{ID: "broken", Type: "STUDENT_REGISTERED", At: "??", Actor: &domain.Actor{ID: "s5", Role: "student"}},
	}
}

func newUseCase(reader *fakeEventReader) *GetRegistrationReportUseCase {
	uc := NewGetRegistrationReportUseCase(reader, aggregator.DefaultRules(), "Africa/Cairo")
	uc.now = func() time.Time { return time.Date(2025, 8, 4, 12, 0, 0, 0, time.UTC) }
	return uc
}

// ------------------------------------------------------------
// SUCCESS (full history)
// ------------------------------------------------------------

func TestGetRegistrationReport_Success(t *testing.T) {
	reader := &fakeEventReader{
		ListFn: func(ctx context.Context) ([]domain.Event, error) { return sampleEvents(), nil },
	}

	out, err := newUseCase(reader).Execute(context.Background(), GetRegistrationReportInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reader.called {
		t.Fatalf("expected ListEvents to be called")
	}
	if out.Timezone != "Africa/Cairo" {
		t.Fatalf("expected default timezone, got %s", out.Timezone)
	}
	if len(out.Rows) != 4 || out.Totals.Total != 4 {
		t.Fatalf("unexpected report: %+v", out)
	}
	if out.NewToday != 1 {
		t.Fatalf("expected NewToday=1, got %d", out.NewToday)
	}
	if len(out.Skipped) != 1 || out.Skipped[0].EventID != "broken" {
		t.Fatalf("expected broken event to be skipped, got %+v", out.Skipped)
	}
}

// ------------------------------------------------------------
// RANGE + ORDER
// ------------------------------------------------------------

func TestGetRegistrationReport_TrimAndDescending(t *testing.T) {
	reader := &fakeEventReader{
		ListFn: func(ctx context.Context) ([]domain.Event, error) { return sampleEvents(), nil },
	}

	out, err := newUseCase(reader).Execute(context.Background(), GetRegistrationReportInput{
		Timezone: "UTC",
		From:     "2025-08-02",
		To:       "2025-08-03",
		Order:    "desc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out.Rows))
	}
	if out.Rows[0].Date != "2025-08-03" || out.Rows[1].Date != "2025-08-02" {
		t.Fatalf("expected descending trimmed rows, got %s, %s", out.Rows[0].Date, out.Rows[1].Date)
	}
	// cumulative values still include 2025-08-01
	if out.Rows[1].CumulativeTotal != 2 {
		t.Fatalf("expected cumulative total 2 on 2025-08-02, got %d", out.Rows[1].CumulativeTotal)
	}
	if out.Totals.Total != 4 {
		t.Fatalf("expected overall totals to stay 4, got %d", out.Totals.Total)
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestGetRegistrationReport_InvalidInput(t *testing.T) {
	cases := []struct {
		in   GetRegistrationReportInput
		want error
	}{
		{GetRegistrationReportInput{From: "08/01/2025"}, ErrInvalidDateRange},
		{GetRegistrationReportInput{To: "2025-13-01"}, ErrInvalidDateRange},
		{GetRegistrationReportInput{From: "2025-08-05", To: "2025-08-01"}, ErrInvalidDateRange},
		{GetRegistrationReportInput{Order: "sideways"}, ErrInvalidOrder},
		{GetRegistrationReportInput{Timezone: "Nowhere/City"}, aggregator.ErrInvalidTimezone},
	}

	for _, tc := range cases {
		reader := &fakeEventReader{}
		_, err := newUseCase(reader).Execute(context.Background(), tc.in)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%+v: expected %v, got %v", tc.in, tc.want, err)
		}
		if reader.called {
			t.Fatalf("%+v: reader must not be called for invalid input", tc.in)
		}
	}
}

// ------------------------------------------------------------
// READER ERROR
// ------------------------------------------------------------

func TestGetRegistrationReport_ReaderError(t *testing.T) {
	dbErr := errors.New("db error")
	reader := &fakeEventReader{
		ListFn: func(ctx context.Context) ([]domain.Event, error) { return nil, dbErr },
	}

	out, err := newUseCase(reader).Execute(context.Background(), GetRegistrationReportInput{})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result on error")
	}
}
