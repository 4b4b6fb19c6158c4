package model

import "time"

// CollegeAuth is a pending affiliation-verification request (college_auths table).
// A row exists only while the request is pending; the admin decision deletes it.
type CollegeAuth struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Info21Image string    `json:"info21_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
