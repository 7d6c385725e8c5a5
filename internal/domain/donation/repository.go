package donation

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines the persistence contract for donations. The aggregate
// queries back the badge engine's cache-miss path.
type Repository interface {
	Save(ctx context.Context, d *Donation) error
	FindByID(ctx context.Context, id uint) (*Donation, error)
	ListBySupporter(ctx context.Context, supporterID uint, limit, offset int) ([]*Donation, int64, error)

	// SumAmountBySupporter returns the exact sum of all donation amounts
	// for the supporter, zero when none exist.
	SumAmountBySupporter(ctx context.Context, supporterID uint) (decimal.Decimal, error)

	// CountBySupporter returns the number of donations for the supporter.
	CountBySupporter(ctx context.Context, supporterID uint) (int64, error)
}
