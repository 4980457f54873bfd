package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the admin console. Every record in the three
// collections is scoped to a user's ID.
type User struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	Email           string     `db:"email" json:"email"`
	Username        *string    `db:"username" json:"username,omitempty"`
	Password        string     `db:"password" json:"-"`
	EmailVerifiedAt *time.Time `db:"email_verified_at" json:"email_verified_at,omitempty"`
	IsActive        bool       `db:"is_active" json:"is_active"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
