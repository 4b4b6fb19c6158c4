package model

import "time"

// Partnership links exactly one store to one partner (partnerships table).
type Partnership struct {
	ID               string    `json:"id"`
	StoreID          string    `json:"store_id"`
	PartnerID        string    `json:"partner_id"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PartnershipRow is one flat row of the partnerships×stores×partners join used
// to assemble the map payload.
type PartnershipRow struct {
	StoreID          string
	StoreName        string
	Lat              float64
	Lon              float64
	Category         string
	URL              string
	PartnerID        string
	PartnerName      string
	PartnerImage     string
	PartnershipID    string
	ShortDescription string
	LongDescription  string
}
