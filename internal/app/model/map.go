package model

// MapStore is one store entry in the map payload: the store's attributes plus
// every partnership the caller is entitled to at that store.
type MapStore struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Lat          float64          `json:"lat"`
	Lon          float64          `json:"lon"`
	Category     string           `json:"category"`
	URL          string           `json:"url"`
	Partnerships []MapPartnership `json:"partnerships"`
}

type MapPartnership struct {
	ID               string     `json:"id"`
	ShortDescription string     `json:"short_description"`
	LongDescription  string     `json:"long_description"`
	Partner          MapPartner `json:"partner"`
}

type MapPartner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
