package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attendee is a record in the attendees collection. TaskLabel is free text,
// not a relation to the tasks collection.
type Attendee struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	TaskLabel *string   `db:"task_label" json:"task_label,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
