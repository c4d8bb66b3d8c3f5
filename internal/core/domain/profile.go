package domain

import "time"

// ProfileSnapshot caches the fields the auth provider exposes about the
// signed-in user. The backend never talks to the provider itself; it only
// stores the snapshot the frontend forwards after sign-in.
type ProfileSnapshot struct {
	ID                  string     `json:"id"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	FullName            string     `json:"fullName"`
	PrimaryEmailAddress string     `json:"primaryEmailAddress"`
	ImageURL            string     `json:"imageUrl"`
	CreatedAt           *time.Time `json:"createdAt,omitempty"`
	LastSignInAt        *time.Time `json:"lastSignInAt,omitempty"`
}
