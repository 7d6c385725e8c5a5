package dto

import "time"

// WorkSpaceDTO is the read model for workspaces.
type WorkSpaceDTO struct {
	ID              uint         `json:"id"`
	Name            string       `json:"name"`
	OwnerName       string       `json:"owner_name"`
	ContactNumber   string       `json:"contact_number,omitempty"`
	Location        *LocationDTO `json:"location,omitempty"`
	HasFastInternet bool         `json:"has_fast_internet"`
	OpeningTime     string       `json:"opening_time,omitempty"`
	ClosingTime     string       `json:"closing_time,omitempty"`
	PowerFrom       string       `json:"power_from,omitempty"`
	PowerTo         string       `json:"power_to,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// LocationDTO is the read model for locations.
type LocationDTO struct {
	ID            uint    `json:"id"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Line1         string  `json:"address_line1,omitempty"`
	Line2         string  `json:"address_line2,omitempty"`
	City          string  `json:"city,omitempty"`
	StateProvince string  `json:"state_province,omitempty"`
	PostalCode    string  `json:"postal_code,omitempty"`
	Country       string  `json:"country,omitempty"`
}
