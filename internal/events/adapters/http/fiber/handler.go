package fiber

import (
	"context"
	"errors"
	"net/http"

	"institute-insights-service/internal/events/core/usecase"
	"institute-insights-service/internal/platform/telemetry"
	"institute-insights-service/internal/platform/validation"

	"github.com/gofiber/fiber/v2"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (bool, error)
	BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
}

type EventHandler struct {
	storeUC   StoreEventUseCase
	validator *validation.Validator
	metrics   *telemetry.Metrics
}

func NewEventHandler(storeUC StoreEventUseCase, v *validation.Validator, m *telemetry.Metrics) *EventHandler {
	return &EventHandler{storeUC: storeUC, validator: v, metrics: m}
}

// CreateEvent godoc
// @Summary Create a new activity event
// @Description Stores a single institute activity event with idempotency handling
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Success 200 {object} CreateEventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		h.metrics.EventIngested("rejected")
		return h.writeError(c, err)
	}

	created, err := h.storeUC.Execute(c.UserContext(), toStoreInput(req))
	if err != nil {
		h.metrics.EventIngested("rejected")
		return h.writeError(c, err)
	}

	if !created {
		h.metrics.EventIngested("duplicate")
		resp := CreateEventResponse{
			Status: "duplicate",
		}
		return c.Status(http.StatusOK).JSON(resp)
	}

	h.metrics.EventIngested("created")
	resp := CreateEventResponse{
		Status: "created",
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// BulkCreateEvents godoc
// @Summary Bulk create activity events
// @Description Accepts a list of events, validates all of them, then stores them individually
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return h.writeError(c, err)
	}

	inputs := make([]usecase.StoreEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = toStoreInput(e)
	}

	result, err := h.storeUC.BulkCreateEvents(
		c.UserContext(),
		usecase.BulkCreateEventsInput{Events: inputs},
	)
	if err != nil {
		return h.writeError(c, err)
	}

	for i := 0; i < result.Created; i++ {
		h.metrics.EventIngested("created")
	}
	for i := 0; i < result.Duplicates; i++ {
		h.metrics.EventIngested("duplicate")
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateEventsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func toStoreInput(req CreateEventRequest) usecase.StoreEventInput {
	in := usecase.StoreEventInput{
		ID:       req.ID,
		Type:     req.Type,
		At:       req.At,
		Tags:     req.Tags,
		Metadata: req.Metadata,
	}
	if req.Actor != nil {
		in.ActorID = req.Actor.ID
		in.ActorRole = req.Actor.Role
		in.ActorName = req.Actor.Name
	}
	return in
}

func (h *EventHandler) writeError(c *fiber.Ctx, err error) error {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
			Fields:  fields,
		})
	case errors.Is(err, usecase.ErrInvalidEvent),
		errors.Is(err, usecase.ErrInvalidTimestamp),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
