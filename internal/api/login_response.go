package api

import "time"

// swagger:model api.LoginResponse
type LoginResponse struct {
	Token     string       `json:"token" example:"eyJhbGciOi..."`
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expires_at" example:"2025-05-09T15:04:05Z"`
}
