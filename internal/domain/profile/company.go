package profile

import (
	"fmt"
	"time"

	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
)

// CompanyProfile is the publisher profile for registered companies. The
// license number identifies the company and must be unique across the
// platform.
type CompanyProfile struct {
	id             uint
	userID         uint
	companyName    string
	companyType    string
	licenseNumber  string
	companySize    vo.CompanySize
	headquartersID *uint
	website        string
	logoURL        string
	photoURL       string
	location       string
	bio            string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewCompanyProfile creates a company profile. An empty size defaults to
// startup.
func NewCompanyProfile(
	userID uint,
	companyName, companyType, licenseNumber string,
	companySize vo.CompanySize,
) (*CompanyProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if companyName == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if companyType == "" {
		return nil, fmt.Errorf("company type is required")
	}
	if licenseNumber == "" {
		return nil, fmt.Errorf("license number is required")
	}
	if companySize == "" {
		companySize = vo.CompanySizeStartup
	}
	if !companySize.IsValid() {
		return nil, fmt.Errorf("invalid company size: %s", companySize)
	}

	now := time.Now()
	return &CompanyProfile{
		userID:        userID,
		companyName:   companyName,
		companyType:   companyType,
		licenseNumber: licenseNumber,
		companySize:   companySize,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructCompanyProfile reconstructs a profile from persistence.
func ReconstructCompanyProfile(
	id uint,
	userID uint,
	companyName, companyType, licenseNumber string,
	companySize vo.CompanySize,
	headquartersID *uint,
	website, logoURL string,
	photoURL, location, bio string,
	createdAt, updatedAt time.Time,
) (*CompanyProfile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !companySize.IsValid() {
		return nil, fmt.Errorf("invalid company size: %s", companySize)
	}

	return &CompanyProfile{
		id:             id,
		userID:         userID,
		companyName:    companyName,
		companyType:    companyType,
		licenseNumber:  licenseNumber,
		companySize:    companySize,
		headquartersID: headquartersID,
		website:        website,
		logoURL:        logoURL,
		photoURL:       photoURL,
		location:       location,
		bio:            bio,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *CompanyProfile) ID() uint                    { return p.id }
func (p *CompanyProfile) UserID() uint                { return p.userID }
func (p *CompanyProfile) CompanyName() string         { return p.companyName }
func (p *CompanyProfile) CompanyType() string         { return p.companyType }
func (p *CompanyProfile) LicenseNumber() string       { return p.licenseNumber }
func (p *CompanyProfile) CompanySize() vo.CompanySize { return p.companySize }
func (p *CompanyProfile) HeadquartersID() *uint       { return p.headquartersID }
func (p *CompanyProfile) Website() string             { return p.website }
func (p *CompanyProfile) LogoURL() string             { return p.logoURL }
func (p *CompanyProfile) PhotoURL() string            { return p.photoURL }
func (p *CompanyProfile) Location() string            { return p.location }
func (p *CompanyProfile) Bio() string                 { return p.bio }
func (p *CompanyProfile) CreatedAt() time.Time        { return p.createdAt }
func (p *CompanyProfile) UpdatedAt() time.Time        { return p.updatedAt }

// SetID assigns the database identity after the initial insert.
func (p *CompanyProfile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// UpdateDetails changes the editable profile fields.
func (p *CompanyProfile) UpdateDetails(companyType, website, logoURL, photoURL, location, bio string) {
	if companyType != "" {
		p.companyType = companyType
	}
	p.website = website
	p.logoURL = logoURL
	p.photoURL = photoURL
	p.location = location
	p.bio = bio
	p.updatedAt = time.Now()
}

// SetHeadquarters links the company to a stored location. A nil ID clears
// the link.
func (p *CompanyProfile) SetHeadquarters(locationID *uint) {
	p.headquartersID = locationID
	p.updatedAt = time.Now()
}

// ChangeCompanySize moves the company to a different size bucket.
func (p *CompanyProfile) ChangeCompanySize(size vo.CompanySize) error {
	if !size.IsValid() {
		return fmt.Errorf("invalid company size: %s", size)
	}
	p.companySize = size
	p.updatedAt = time.Now()
	return nil
}
