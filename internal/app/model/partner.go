package model

import "time"

// Partner is a college/organization entitled to store discounts (partners table).
type Partner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
