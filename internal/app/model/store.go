package model

import "time"

// Store is a business location (stores table). Lat/Lon are nullable; stores
// without coordinates are kept out of the map payload.
type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Lat       *float64  `json:"lat"`
	Lon       *float64  `json:"lon"`
	URL       string    `json:"url"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
