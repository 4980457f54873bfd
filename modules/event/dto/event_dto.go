package dto

import (
	"time"

	"event-admin-api/modules/event/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest carries the event form fields. Date accepts RFC3339 or
// the HTML datetime-local shape and is normalized server-side.
type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
}

// UpdateEventRequest re-uses the same form shape, pre-filled with the
// record's current values.
type UpdateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
}

// ===================== Response DTOs =====================

type EventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ===================== Mapper Functions =====================

func ToEventResponse(e *entity.Event) *EventResponse {
	resp := &EventResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		Location:  e.Location,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
	if e.Description != nil {
		resp.Description = *e.Description
	}
	return resp
}

func ToEventResponseList(events []entity.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *ToEventResponse(&events[i]))
	}
	return result
}
