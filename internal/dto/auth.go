package dto

import "time"

// CreateSessionRequest exchanges a provider-verified profile for a session
// token. UserID is the auth provider's stable user identifier.
type CreateSessionRequest struct {
	UserID  string             `json:"userID" binding:"required"`
	Profile SaveProfileRequest `json:"profile"`
}

// SessionResponse carries the minted bearer token for /api/v1 access.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
