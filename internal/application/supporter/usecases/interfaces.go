package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rawad-inc/rawad/internal/application/supporter/dto"
)

// DonationStatsCache caches aggregated donation figures per supporter
// profile. Get methods report a miss with ok=false; errors are treated as
// misses by the callers.
type DonationStatsCache interface {
	GetTotal(ctx context.Context, profileID uint) (decimal.Decimal, bool, error)
	SetTotal(ctx context.Context, profileID uint, total decimal.Decimal) error
	GetCount(ctx context.Context, profileID uint) (int64, bool, error)
	SetCount(ctx context.Context, profileID uint, count int64) error
	InvalidateStats(ctx context.Context, profileID uint) error
}

type GetDonationStatsExecutor interface {
	Execute(ctx context.Context, query GetDonationStatsQuery) (*DonationStatsResult, error)
}

type UpdateBadgeLevelExecutor interface {
	Execute(ctx context.Context, cmd UpdateBadgeLevelCommand) (*UpdateBadgeLevelResult, error)
}

type GetSupporterProfileExecutor interface {
	Execute(ctx context.Context, query GetSupporterProfileQuery) (*dto.SupporterProfileDTO, error)
}

type UpdateSupporterProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateSupporterProfileCommand) (*UpdateSupporterProfileResult, error)
}
