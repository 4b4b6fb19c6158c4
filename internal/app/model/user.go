package model

import (
	"time"

	"github.com/lib/pq"
)

// User is an end-user row (users table). Users are upserted on login keyed by
// phone number; CollegeAuth holds the partner ids the user has been verified for.
type User struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Image        string         `json:"image"`
	Phone        string         `json:"phone"`
	IsVerified   bool           `json:"is_verified"`
	CollegeAuth  pq.StringArray `json:"college_auth"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
