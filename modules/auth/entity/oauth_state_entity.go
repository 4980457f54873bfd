package entity

import "time"

// OAuthState is a one-time CSRF token for the federated sign-in redirect.
type OAuthState struct {
	State     string    `db:"state" json:"state"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
