package fiber

import "institute-insights-service/internal/platform/validation"

// ActorRequest identifies who originated the event
type ActorRequest struct {
	ID   string `json:"id" validate:"required" example:"s1"`
	Role string `json:"role" validate:"required" example:"student"`
	Name string `json:"name" example:"Layla"`
}

// CreateEventRequest represents event creation payload
// @Description Activity event DTO
type CreateEventRequest struct {
	ID       string         `json:"id" example:"evt-1001"`
	Type     string         `json:"type" validate:"required" example:"STUDENT_REGISTERED"`
	At       string         `json:"at" validate:"required" example:"2025-08-10T08:00:00Z"`
	Actor    *ActorRequest  `json:"actor" validate:"omitempty"`
	Tags     []string       `json:"tags"`
	Metadata map[string]any `json:"metadata"`
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events" validate:"dive"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string                  `json:"error" example:"invalid_event"`
	Message string                  `json:"message" example:"Event payload is invalid"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}
