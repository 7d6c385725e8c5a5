package dto

import "time"

// SupporterProfileDTO is the read model for supporter profiles.
type SupporterProfileDTO struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	Country        string    `json:"country"`
	BadgeLevel     string    `json:"badge_level"`
	BadgeLabel     string    `json:"badge_label"`
	PhotoURL       string    `json:"photo_url,omitempty"`
	Location       string    `json:"location,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	TotalDonations string    `json:"total_donations"`
	DonationCount  int64     `json:"donation_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
