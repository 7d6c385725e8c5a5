package donation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// minAmount is the smallest accepted donation.
var minAmount = decimal.NewFromFloat(0.01)

// Donation represents a single donation made by a supporter. Donations are
// immutable after creation; badge recomputation is triggered by the
// application layer whenever one is recorded.
type Donation struct {
	id          uint
	supporterID uint
	amount      decimal.Decimal
	createdAt   time.Time
}

// NewDonation creates a donation for the given supporter profile.
func NewDonation(supporterID uint, amount decimal.Decimal) (*Donation, error) {
	if supporterID == 0 {
		return nil, fmt.Errorf("supporter ID is required")
	}
	if amount.LessThan(minAmount) {
		return nil, fmt.Errorf("donation amount must be at least %s", minAmount)
	}

	return &Donation{
		supporterID: supporterID,
		amount:      amount,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructDonation reconstructs a donation from persistence.
func ReconstructDonation(id, supporterID uint, amount decimal.Decimal, createdAt time.Time) (*Donation, error) {
	if id == 0 {
		return nil, fmt.Errorf("donation ID cannot be zero")
	}
	if supporterID == 0 {
		return nil, fmt.Errorf("supporter ID is required")
	}

	return &Donation{
		id:          id,
		supporterID: supporterID,
		amount:      amount,
		createdAt:   createdAt,
	}, nil
}

func (d *Donation) ID() uint                { return d.id }
func (d *Donation) SupporterID() uint       { return d.supporterID }
func (d *Donation) Amount() decimal.Decimal { return d.amount }
func (d *Donation) CreatedAt() time.Time    { return d.createdAt }

// SetID assigns the database identity after the initial insert.
func (d *Donation) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("donation ID already set")
	}
	if id == 0 {
		return fmt.Errorf("donation ID cannot be zero")
	}
	d.id = id
	return nil
}
