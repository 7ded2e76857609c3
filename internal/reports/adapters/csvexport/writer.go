// Package csvexport renders daily registration rows in the column layout the
// admin dashboard downloads.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"institute-insights-service/internal/reports/core/domain"
)

var Header = []string{
	"Date",
	"New users",
	"New students",
	"New teachers",
	"Total students",
	"Total teachers",
	"Total users",
}

type Writer struct {
	w *csv.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

func (w *Writer) WriteHeader() error {
	return w.w.Write(Header)
}

func (w *Writer) WriteRow(row domain.DailyBucketRow) error {
	return w.w.Write([]string{
		row.Date,
		itoa(row.NewTotal),
		itoa(row.NewByRole[domain.RoleStudent]),
		itoa(row.NewByRole[domain.RoleTeacher]),
		itoa(row.CumulativeByRole[domain.RoleStudent]),
		itoa(row.CumulativeByRole[domain.RoleTeacher]),
		itoa(row.CumulativeTotal),
	})
}

// Flush writes buffered rows and reports any write error.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}

// WriteAll writes the header and every row in the given order.
func WriteAll(out io.Writer, rows []domain.DailyBucketRow) error {
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
