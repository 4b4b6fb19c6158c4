package model

import "time"

// UserLog records a store click from the map page (user_logs table).
type UserLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StoreID   string    `json:"store_id"`
	CreatedAt time.Time `json:"created_at"`
}
