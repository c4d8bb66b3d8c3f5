package dto

import (
	"time"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// SaveProfileRequest carries the auth-provider profile fields the frontend
// forwards after sign-in. The user id comes from the session token, not the
// body.
type SaveProfileRequest struct {
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	FullName            string     `json:"fullName"`
	PrimaryEmailAddress string     `json:"primaryEmailAddress" binding:"omitempty,email"`
	ImageURL            string     `json:"imageUrl" binding:"omitempty,url"`
	CreatedAt           *time.Time `json:"createdAt"`
	LastSignInAt        *time.Time `json:"lastSignInAt"`
}

// ToDomainProfileSnapshot converts the request into the snapshot stored for
// the given user.
func (r SaveProfileRequest) ToDomainProfileSnapshot(userID string) domain.ProfileSnapshot {
	return domain.ProfileSnapshot{
		ID:                  userID,
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		FullName:            r.FullName,
		PrimaryEmailAddress: r.PrimaryEmailAddress,
		ImageURL:            r.ImageURL,
		CreatedAt:           r.CreatedAt,
		LastSignInAt:        r.LastSignInAt,
	}
}

// ProfileResponse defines the cached profile snapshot returned to the
// dashboard header.
type ProfileResponse struct {
	ID                  string     `json:"id"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	FullName            string     `json:"fullName"`
	PrimaryEmailAddress string     `json:"primaryEmailAddress"`
	ImageURL            string     `json:"imageUrl"`
	CreatedAt           *time.Time `json:"createdAt,omitempty"`
	LastSignInAt        *time.Time `json:"lastSignInAt,omitempty"`
}

// ToProfileResponse converts a domain.ProfileSnapshot to a DTO.
func ToProfileResponse(p *domain.ProfileSnapshot) ProfileResponse {
	return ProfileResponse{
		ID:                  p.ID,
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		FullName:            p.FullName,
		PrimaryEmailAddress: p.PrimaryEmailAddress,
		ImageURL:            p.ImageURL,
		CreatedAt:           p.CreatedAt,
		LastSignInAt:        p.LastSignInAt,
	}
}
