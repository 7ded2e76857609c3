package fiber

import (
	"context"
	"errors"
	"net/http"

	"institute-insights-service/internal/platform/telemetry"
	"institute-insights-service/internal/platform/validation"
	"institute-insights-service/internal/scheduling/core/detector"
	"institute-insights-service/internal/scheduling/core/domain"
	"institute-insights-service/internal/scheduling/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, in usecase.CheckAvailabilityInput) (domain.ConflictResult, error)
}

type SaveGroupScheduleUseCase interface {
	Execute(ctx context.Context, in usecase.SaveGroupScheduleInput) (domain.ConflictResult, error)
}

type ScheduleHandler struct {
	checkUC   CheckAvailabilityUseCase
	saveUC    SaveGroupScheduleUseCase
	validator *validation.Validator
	metrics   *telemetry.Metrics
}

func NewScheduleHandler(checkUC CheckAvailabilityUseCase, saveUC SaveGroupScheduleUseCase, v *validation.Validator, m *telemetry.Metrics) *ScheduleHandler {
	return &ScheduleHandler{checkUC: checkUC, saveUC: saveUC, validator: v, metrics: m}
}

// CheckAvailability godoc
// @Summary Check weekly slots against a teacher's reservations
// @Description Splits the requested slots into available and conflicting ones; exclude_group_id ignores that group's own reservations
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body CheckAvailabilityRequest true "Slots to check"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /schedules/availability [post]
func (h *ScheduleHandler) CheckAvailability(c *fiber.Ctx) error {
	var req CheckAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	if err := h.validator.Struct(req); err != nil {
		h.metrics.SlotCheck("invalid")
		return writeError(c, err)
	}

	result, err := h.checkUC.Execute(c.UserContext(), usecase.CheckAvailabilityInput{
		TeacherID:      req.TeacherID,
		ExcludeGroupID: req.ExcludeGroupID,
		Slots:          toDomainSlots(req.Slots),
	})
	if err != nil {
		h.metrics.SlotCheck("invalid")
		return writeError(c, err)
	}

	h.metrics.SlotCheck(resultLabel(result))
	return c.Status(http.StatusOK).JSON(toAvailabilityResponse(result))
}

// SaveGroupSchedule godoc
// @Summary Replace a group's weekly slots
// @Description Stores the group's slots when none of them overlaps another group of the same teacher
// @Tags Schedules
// @Accept json
// @Produce json
// @Param group_id path string true "Group id"
// @Param request body SaveGroupScheduleRequest true "New slots of the group"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} AvailabilityResponse
// @Failure 500 {object} ErrorResponse
// @Router /schedules/groups/{group_id} [put]
func (h *ScheduleHandler) SaveGroupSchedule(c *fiber.Ctx) error {
	var req SaveGroupScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	if err := h.validator.Struct(req); err != nil {
		h.metrics.SlotCheck("invalid")
		return writeError(c, err)
	}

	result, err := h.saveUC.Execute(c.UserContext(), usecase.SaveGroupScheduleInput{
		TeacherID: req.TeacherID,
		GroupID:   c.Params("group_id"),
		Slots:     toDomainSlots(req.Slots),
	})
	if errors.Is(err, usecase.ErrSlotsUnavailable) {
		h.metrics.SlotCheck("conflict")
		return c.Status(http.StatusConflict).JSON(toAvailabilityResponse(result))
	}
	if err != nil {
		h.metrics.SlotCheck("invalid")
		return writeError(c, err)
	}

	h.metrics.SlotCheck(resultLabel(result))
	return c.Status(http.StatusOK).JSON(toAvailabilityResponse(result))
}

func resultLabel(r domain.ConflictResult) string {
	if r.AllAvailable {
		return "available"
	}
	return "conflict"
}

func writeError(c *fiber.Ctx, err error) error {
	var (
		fields  validation.Errors
		slotErr *detector.SlotError
	)
	switch {
	case errors.As(err, &fields):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Fields:  fields,
		})
	case errors.As(err, &slotErr):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_slot",
			Message: err.Error(),
			Slot: &SlotErrorDetail{
				Collection: slotErr.Collection,
				Index:      slotErr.Index,
				Field:      slotErr.Field,
			},
		})
	case errors.Is(err, usecase.ErrInvalidScheduleRequest):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
