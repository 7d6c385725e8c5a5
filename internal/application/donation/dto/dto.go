package dto

import "time"

// DonationDTO is the read model for donations.
type DonationDTO struct {
	ID          uint      `json:"id"`
	SupporterID uint      `json:"supporter_id"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}
