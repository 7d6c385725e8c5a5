package profile

import (
	"fmt"
	"time"

	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
)

// SupporterProfile is the profile for supporters/donors. It is created
// together with the user account; the country is filled in later during
// registration. The badge level is derived from the donation history and
// must only be changed through the badge engine.
type SupporterProfile struct {
	id         uint
	userID     uint
	country    string
	badgeLevel vo.BadgeLevel
	photoURL   string
	location   string
	bio        string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewSupporterProfile creates a profile for the given user. Country may be
// empty at creation time. The badge always starts at bronze.
func NewSupporterProfile(userID uint, country string) (*SupporterProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &SupporterProfile{
		userID:     userID,
		country:    country,
		badgeLevel: vo.BadgeBronze,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructSupporterProfile reconstructs a profile from persistence.
func ReconstructSupporterProfile(
	id uint,
	userID uint,
	country string,
	badgeLevel vo.BadgeLevel,
	photoURL, location, bio string,
	createdAt, updatedAt time.Time,
) (*SupporterProfile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !badgeLevel.IsValid() {
		return nil, fmt.Errorf("invalid badge level: %s", badgeLevel)
	}

	return &SupporterProfile{
		id:         id,
		userID:     userID,
		country:    country,
		badgeLevel: badgeLevel,
		photoURL:   photoURL,
		location:   location,
		bio:        bio,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (p *SupporterProfile) ID() uint                  { return p.id }
func (p *SupporterProfile) UserID() uint              { return p.userID }
func (p *SupporterProfile) Country() string           { return p.country }
func (p *SupporterProfile) BadgeLevel() vo.BadgeLevel { return p.badgeLevel }
func (p *SupporterProfile) PhotoURL() string          { return p.photoURL }
func (p *SupporterProfile) Location() string          { return p.location }
func (p *SupporterProfile) Bio() string               { return p.bio }
func (p *SupporterProfile) CreatedAt() time.Time      { return p.createdAt }
func (p *SupporterProfile) UpdatedAt() time.Time      { return p.updatedAt }

// SetID assigns the database identity after the initial insert.
func (p *SupporterProfile) SetID(id uint) error {
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
func (p *SupporterProfile) UpdateDetails(country, photoURL, location, bio string) {
	p.country = country
	p.photoURL = photoURL
	p.location = location
	p.bio = bio
	p.updatedAt = time.Now()
}

// ChangeBadgeLevel moves the supporter to a new badge tier. Returns true
// when the level actually changed so callers can skip redundant writes.
func (p *SupporterProfile) ChangeBadgeLevel(level vo.BadgeLevel) (bool, error) {
	if !level.IsValid() {
		return false, fmt.Errorf("invalid badge level: %s", level)
	}
	if p.badgeLevel == level {
		return false, nil
	}
	p.badgeLevel = level
	p.updatedAt = time.Now()
	return true, nil
}
