package profile

import (
	"fmt"
	"time"

	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
)

// IndividualClientProfile is the publisher profile for individual clients
// and business owners. The business fields are only filled for business
// owners.
type IndividualClientProfile struct {
	id                  uint
	userID              uint
	publisherType       vo.PublisherType
	businessName        string
	businessDescription string
	photoURL            string
	location            string
	bio                 string
	createdAt           time.Time
	updatedAt           time.Time
}

// NewIndividualClientProfile creates a publisher profile. An empty type
// defaults to individual_client.
func NewIndividualClientProfile(
	userID uint,
	publisherType vo.PublisherType,
	businessName, businessDescription string,
) (*IndividualClientProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if publisherType == "" {
		publisherType = vo.PublisherIndividualClient
	}
	if !publisherType.IsValid() {
		return nil, fmt.Errorf("invalid publisher type: %s", publisherType)
	}

	now := time.Now()
	return &IndividualClientProfile{
		userID:              userID,
		publisherType:       publisherType,
		businessName:        businessName,
		businessDescription: businessDescription,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructIndividualClientProfile reconstructs a profile from persistence.
func ReconstructIndividualClientProfile(
	id uint,
	userID uint,
	publisherType vo.PublisherType,
	businessName, businessDescription string,
	photoURL, location, bio string,
	createdAt, updatedAt time.Time,
) (*IndividualClientProfile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !publisherType.IsValid() {
		return nil, fmt.Errorf("invalid publisher type: %s", publisherType)
	}

	return &IndividualClientProfile{
		id:                  id,
		userID:              userID,
		publisherType:       publisherType,
		businessName:        businessName,
		businessDescription: businessDescription,
		photoURL:            photoURL,
		location:            location,
		bio:                 bio,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (p *IndividualClientProfile) ID() uint                        { return p.id }
func (p *IndividualClientProfile) UserID() uint                    { return p.userID }
func (p *IndividualClientProfile) PublisherType() vo.PublisherType { return p.publisherType }
func (p *IndividualClientProfile) BusinessName() string            { return p.businessName }
func (p *IndividualClientProfile) BusinessDescription() string     { return p.businessDescription }
func (p *IndividualClientProfile) PhotoURL() string                { return p.photoURL }
func (p *IndividualClientProfile) Location() string                { return p.location }
func (p *IndividualClientProfile) Bio() string                     { return p.bio }
func (p *IndividualClientProfile) CreatedAt() time.Time            { return p.createdAt }
func (p *IndividualClientProfile) UpdatedAt() time.Time            { return p.updatedAt }

// SetID assigns the database identity after the initial insert.
func (p *IndividualClientProfile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// UpdateBusiness changes the business details of the publisher.
func (p *IndividualClientProfile) UpdateBusiness(businessName, businessDescription string) {
	p.businessName = businessName
	p.businessDescription = businessDescription
	p.updatedAt = time.Now()
}

// UpdateDetails changes the editable profile fields.
func (p *IndividualClientProfile) UpdateDetails(photoURL, location, bio string) {
	p.photoURL = photoURL
	p.location = location
	p.bio = bio
	p.updatedAt = time.Now()
}
