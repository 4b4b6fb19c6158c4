package model

import "time"

// Admin is a dashboard account (dashboard_users table). Admin accounts are
// created out of band by cmd/seed; there is no self-service signup.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
