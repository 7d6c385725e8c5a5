package dto

import "time"

// MobileNumberDTO is the read model for mobile numbers. The verification
// code itself is never exposed.
type MobileNumberDTO struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Number      string     `json:"number"`
	CountryCode string     `json:"country_code,omitempty"`
	CountryName string     `json:"country_name,omitempty"`
	CountryISO  string     `json:"country_iso,omitempty"`
	CarrierName string     `json:"carrier_name,omitempty"`
	NumberType  string     `json:"number_type,omitempty"`
	IsVerified  bool       `json:"is_verified"`
	Status      string     `json:"status"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
