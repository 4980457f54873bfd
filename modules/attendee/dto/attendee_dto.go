package dto

import (
	"time"

	"event-admin-api/modules/attendee/entity"
)

// ===================== Request DTOs =====================

type CreateAttendeeRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	TaskLabel string `json:"task_label"`
}

type UpdateAttendeeRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	TaskLabel string `json:"task_label"`
}

// ===================== Response DTOs =====================

type AttendeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TaskLabel string    `json:"task_label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ===================== Mapper Functions =====================

func ToAttendeeResponse(a *entity.Attendee) *AttendeeResponse {
	resp := &AttendeeResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
	if a.TaskLabel != nil {
		resp.TaskLabel = *a.TaskLabel
	}
	return resp
}

func ToAttendeeResponseList(attendees []entity.Attendee) []AttendeeResponse {
	result := make([]AttendeeResponse, 0, len(attendees))
	for i := range attendees {
		result = append(result, *ToAttendeeResponse(&attendees[i]))
	}
	return result
}
