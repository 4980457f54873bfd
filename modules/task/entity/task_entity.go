package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the two-state task status.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Toggled returns the opposite status. Applying it twice round-trips.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusCompleted {
		return TaskStatusPending
	}
	return TaskStatusCompleted
}

// Task is a record in the tasks collection. EventID is required and immutable
// after creation; AttendeeID is optional.
type Task struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	UserID     uuid.UUID  `db:"user_id" json:"user_id"`
	Name       string     `db:"name" json:"name"`
	Deadline   time.Time  `db:"deadline" json:"deadline"`
	Status     TaskStatus `db:"status" json:"status"`
	EventID    uuid.UUID  `db:"event_id" json:"event_id"`
	AttendeeID *uuid.UUID `db:"attendee_id" json:"attendee_id,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// TaskDetail is a Task plus the read-only display projections of its
// references.
type TaskDetail struct {
	Task
	EventName    string  `db:"event_name" json:"event_name"`
	AttendeeName *string `db:"attendee_name" json:"attendee_name,omitempty"`
}
