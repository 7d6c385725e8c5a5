package workspace

import (
	"fmt"
	"time"
)

const maxNameLength = 120

// WorkSpace is a physical place where work is offered. Names are unique
// across the platform; the repository enforces that with a unique index.
type WorkSpace struct {
	id              uint
	name            string
	ownerName       string
	contactNumber   string
	locationID      *uint
	hasFastInternet bool
	openingTime     string
	closingTime     string
	powerFrom       string
	powerTo         string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewWorkSpace creates a workspace. Opening/closing and power availability
// times use "HH:MM" and may be empty when unknown.
func NewWorkSpace(name, ownerName, contactNumber string) (*WorkSpace, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}
	if ownerName == "" {
		return nil, fmt.Errorf("owner name is required")
	}
	now := time.Now()
	return &WorkSpace{
		name:          name,
		ownerName:     ownerName,
		contactNumber: contactNumber,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructWorkSpace reconstructs a workspace from persistence.
func ReconstructWorkSpace(
	id uint,
	name, ownerName, contactNumber string,
	locationID *uint,
	hasFastInternet bool,
	openingTime, closingTime, powerFrom, powerTo string,
	createdAt, updatedAt time.Time,
) (*WorkSpace, error) {
	if id == 0 {
		return nil, fmt.Errorf("workspace ID cannot be zero")
	}
	return &WorkSpace{
		id:              id,
		name:            name,
		ownerName:       ownerName,
		contactNumber:   contactNumber,
		locationID:      locationID,
		hasFastInternet: hasFastInternet,
		openingTime:     openingTime,
		closingTime:     closingTime,
		powerFrom:       powerFrom,
		powerTo:         powerTo,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (w *WorkSpace) ID() uint              { return w.id }
func (w *WorkSpace) Name() string          { return w.name }
func (w *WorkSpace) OwnerName() string     { return w.ownerName }
func (w *WorkSpace) ContactNumber() string { return w.contactNumber }
func (w *WorkSpace) LocationID() *uint     { return w.locationID }
func (w *WorkSpace) HasFastInternet() bool { return w.hasFastInternet }
func (w *WorkSpace) OpeningTime() string   { return w.openingTime }
func (w *WorkSpace) ClosingTime() string   { return w.closingTime }
func (w *WorkSpace) PowerFrom() string     { return w.powerFrom }
func (w *WorkSpace) PowerTo() string       { return w.powerTo }
func (w *WorkSpace) CreatedAt() time.Time  { return w.createdAt }
func (w *WorkSpace) UpdatedAt() time.Time  { return w.updatedAt }

// SetID assigns the database identity after the initial insert.
func (w *WorkSpace) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("workspace ID already set")
	}
	if id == 0 {
		return fmt.Errorf("workspace ID cannot be zero")
	}
	w.id = id
	return nil
}

// AttachLocation links the workspace to a saved location.
func (w *WorkSpace) AttachLocation(locationID uint) error {
	if locationID == 0 {
		return fmt.Errorf("location ID cannot be zero")
	}
	w.locationID = &locationID
	w.updatedAt = time.Now()
	return nil
}

// SetAmenities records connectivity and power availability.
func (w *WorkSpace) SetAmenities(fastInternet bool, powerFrom, powerTo string) {
	w.hasFastInternet = fastInternet
	w.powerFrom = powerFrom
	w.powerTo = powerTo
	w.updatedAt = time.Now()
}

// SetHours records the opening and closing times.
func (w *WorkSpace) SetHours(opening, closing string) {
	w.openingTime = opening
	w.closingTime = closing
	w.updatedAt = time.Now()
}

// UpdateDetails replaces the owner and contact details.
func (w *WorkSpace) UpdateDetails(ownerName, contactNumber string) error {
	if ownerName == "" {
		return fmt.Errorf("owner name is required")
	}
	w.ownerName = ownerName
	w.contactNumber = contactNumber
	w.updatedAt = time.Now()
	return nil
}
