package workspace

import (
	"fmt"
	"time"
)

// Address carries the reverse-geocoded fields of a location.
type Address struct {
	Line1         string
	Line2         string
	City          string
	StateProvince string
	PostalCode    string
	Country       string
}

// Location is a geographic point with reverse-geocoded address details.
// Address fields are filled asynchronously after creation and stay blank
// when geocoding fails.
type Location struct {
	id        uint
	latitude  float64
	longitude float64
	address   Address
	createdAt time.Time
	updatedAt time.Time
}

// NewLocation creates a location from coordinates. The address is resolved
// later by the geocoding task.
func NewLocation(latitude, longitude float64) (*Location, error) {
	if latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("longitude must be between -180 and 180")
	}
	now := time.Now()
	return &Location{
		latitude:  latitude,
		longitude: longitude,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructLocation reconstructs a location from persistence.
func ReconstructLocation(
	id uint,
	latitude, longitude float64,
	address Address,
	createdAt, updatedAt time.Time,
) (*Location, error) {
	if id == 0 {
		return nil, fmt.Errorf("location ID cannot be zero")
	}
	return &Location{
		id:        id,
		latitude:  latitude,
		longitude: longitude,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (l *Location) ID() uint             { return l.id }
func (l *Location) Latitude() float64    { return l.latitude }
func (l *Location) Longitude() float64   { return l.longitude }
func (l *Location) Address() Address     { return l.address }
func (l *Location) CreatedAt() time.Time { return l.createdAt }
func (l *Location) UpdatedAt() time.Time { return l.updatedAt }

// SetID assigns the database identity after the initial insert.
func (l *Location) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("location ID already set")
	}
	if id == 0 {
		return fmt.Errorf("location ID cannot be zero")
	}
	l.id = id
	return nil
}

// SetAddress fills the reverse-geocoded address details.
func (l *Location) SetAddress(a Address) {
	l.address = a
	l.updatedAt = time.Now()
}

// Move changes the coordinates and clears the stale address so the
// geocoding task can resolve it again.
func (l *Location) Move(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if latitude == l.latitude && longitude == l.longitude {
		return nil
	}
	l.latitude = latitude
	l.longitude = longitude
	l.address = Address{}
	l.updatedAt = time.Now()
	return nil
}
