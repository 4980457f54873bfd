package dto

import (
	"time"

	"event-admin-api/modules/task/entity"
)

// ===================== Request DTOs =====================

// CreateTaskRequest carries the task form fields. EventID is required;
// AttendeeID may be empty. Status is not accepted: new tasks always start
// pending.
type CreateTaskRequest struct {
	Name       string `json:"name"`
	Deadline   string `json:"deadline"`
	EventID    string `json:"event_id"`
	AttendeeID string `json:"attendee_id"`
}

// ===================== Response DTOs =====================

type TaskResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Deadline     time.Time `json:"deadline"`
	Status       string    `json:"status"`
	EventID      string    `json:"event_id"`
	EventName    string    `json:"event_name,omitempty"`
	AttendeeID   string    `json:"attendee_id,omitempty"`
	AttendeeName string    `json:"attendee_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ===================== Mapper Functions =====================

func ToTaskResponse(t *entity.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Deadline:  t.Deadline,
		Status:    string(t.Status),
		EventID:   t.EventID.String(),
		CreatedAt: t.CreatedAt,
	}
	if t.AttendeeID != nil {
		resp.AttendeeID = t.AttendeeID.String()
	}
	return resp
}

func ToTaskDetailResponse(t *entity.TaskDetail) *TaskResponse {
	resp := ToTaskResponse(&t.Task)
	resp.EventName = t.EventName
	if t.AttendeeName != nil {
		resp.AttendeeName = *t.AttendeeName
	}
	return resp
}

func ToTaskDetailResponseList(tasks []entity.TaskDetail) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, *ToTaskDetailResponse(&tasks[i]))
	}
	return result
}
