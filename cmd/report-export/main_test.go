package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"institute-insights-service/internal/reports/adapters/jsonfile"
	"institute-insights-service/internal/reports/core/usecase"
)

const eventsJSON = `[
  {"id": "e1", "type": "STUDENT_REGISTERED", "at": "2025-08-10T08:00:00Z", "actor": {"id": "s1", "role": "student"}},
  {"id": "e2", "type": "STUDENT_REGISTERED", "at": "2025-08-10T09:00:00Z", "actor": {"id": "s2", "role": "student"}},
  {"id": "e3", "type": "LESSON_CREATED", "at": "2025-08-11T07:00:00Z", "actor": {"id": "t1", "role": "teacher"}},
  {"id": "e4", "type": "STUDENT_REGISTERED", "at": "not-a-time", "actor": {"id": "s3", "role": "student"}}
]`

func writeEvents(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(eventsJSON), 0o600); err != nil {
		t.Fatalf("write events: %v", err)
	}
	return path
}

func TestExport_WritesCSV(t *testing.T) {
	var buf bytes.Buffer
	n, err := export(context.Background(), jsonfile.NewEventSource(writeEvents(t)), &buf, options{
		timezone: "UTC",
		roles:    []string{"teacher"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}

	want := strings.Join([]string{
		"Date,New users,New students,New teachers,Total students,Total teachers,Total users",
		"2025-08-10,2,2,0,2,0,2",
		"2025-08-11,1,0,1,2,1,3",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestExport_DescendingOrder(t *testing.T) {
	var buf bytes.Buffer
	if _, err := export(context.Background(), jsonfile.NewEventSource(writeEvents(t)), &buf, options{
		timezone: "UTC",
		order:    "desc",
		roles:    []string{"teacher"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "2025-08-11") {
		t.Fatalf("expected newest day first, got %q", lines)
	}
}

func TestExport_InvalidRange(t *testing.T) {
	var buf bytes.Buffer
	_, err := export(context.Background(), jsonfile.NewEventSource(writeEvents(t)), &buf, options{
		timezone: "UTC",
		from:     "2025-08-12",
		to:       "2025-08-01",
	})
	if !errors.Is(err, usecase.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written on error, got %q", buf.String())
	}
}
