package dto

import (
	"time"

	"event-admin-api/modules/auth/entity"
)

// ===================== Request DTOs =====================

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ===================== Response DTOs =====================

// AuthTokensResponse is returned by every flow that establishes a session.
type AuthTokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserResponse is the session payload: the current user as re-resolved from
// the database.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ===================== Mapper Functions =====================

func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
	if u.Username != nil {
		resp.Username = *u.Username
	}

	return resp
}
