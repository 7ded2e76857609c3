package fiber

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"institute-insights-service/internal/platform/telemetry"
	"institute-insights-service/internal/reports/adapters/csvexport"
	"institute-insights-service/internal/reports/core/aggregator"
	"institute-insights-service/internal/reports/core/domain"
	"institute-insights-service/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRegistrationReportUseCase interface {
	Execute(ctx context.Context, in usecase.GetRegistrationReportInput) (*domain.DailyReport, error)
}

type ReportHandler struct {
	uc      GetRegistrationReportUseCase
	metrics *telemetry.Metrics
}

func NewReportHandler(uc GetRegistrationReportUseCase, m *telemetry.Metrics) *ReportHandler {
	return &ReportHandler{uc: uc, metrics: m}
}

// GetRegistrations godoc
// @Summary Daily registrations report
// @Description Returns new and cumulative student/teacher registrations per calendar day
// @Tags Reports
// @Produce json
// @Param timezone query string false "IANA timezone (defaults to the configured one)"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Param order query string false "asc | desc"
// @Success 200 {object} RegistrationReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/registrations [get]
func (h *ReportHandler) GetRegistrations(c *fiber.Ctx) error {
	report, err := h.run(c)
	if err != nil {
		return writeError(c, err)
	}

	resp := RegistrationReportResponse{
		Timezone:     report.Timezone,
		Rows:         make([]DailyRowResponse, 0, len(report.Rows)),
		Totals:       TotalsResponse{ByRole: report.Totals.ByRole, Total: report.Totals.Total},
		NewToday:     report.NewToday,
		SkippedCount: len(report.Skipped),
	}

	for _, r := range report.Rows {
		resp.Rows = append(resp.Rows, DailyRowResponse{
			Date:             r.Date,
			NewByRole:        r.NewByRole,
			NewTotal:         r.NewTotal,
			CumulativeByRole: r.CumulativeByRole,
			CumulativeTotal:  r.CumulativeTotal,
		})
	}
	for _, s := range report.Skipped {
		resp.Skipped = append(resp.Skipped, SkippedEventResponse{EventID: s.EventID, Reason: s.Reason})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ExportRegistrationsCSV godoc
// @Summary Daily registrations report as CSV
// @Description Same query as /reports/registrations, rendered as a CSV download
// @Tags Reports
// @Produce text/csv
// @Param timezone query string false "IANA timezone (defaults to the configured one)"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Param order query string false "asc | desc"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/registrations.csv [get]
func (h *ReportHandler) ExportRegistrationsCSV(c *fiber.Ctx) error {
	report, err := h.run(c)
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := csvexport.WriteAll(&buf, report.Rows); err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="registrations.csv"`)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (h *ReportHandler) run(c *fiber.Ctx) (*domain.DailyReport, error) {
	in := usecase.GetRegistrationReportInput{
		Timezone: c.Query("timezone", ""),
		From:     c.Query("from", ""),
		To:       c.Query("to", ""),
		Order:    c.Query("order", ""),
	}

	report, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return nil, err
	}

	h.metrics.ReportBuilt(len(report.Rows), len(report.Skipped))
	return report, nil
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidOrder),
		errors.Is(err, aggregator.ErrInvalidTimezone):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
