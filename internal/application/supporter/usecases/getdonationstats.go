package usecases

import (
	"context"

	"github.com/shopspring/decimal"
)

type GetDonationStatsQuery struct {
	ProfileID uint
}

type DonationStatsResult struct {
	ProfileID uint
	Total     decimal.Decimal
	Count     int64
}

type GetDonationStatsUseCase struct {
	stats *DonationStatsService
}

func NewGetDonationStatsUseCase(stats *DonationStatsService) *GetDonationStatsUseCase {
	return &GetDonationStatsUseCase{stats: stats}
}

func (uc *GetDonationStatsUseCase) Execute(ctx context.Context, query GetDonationStatsQuery) (*DonationStatsResult, error) {
	total, err := uc.stats.TotalDonations(ctx, query.ProfileID)
	if err != nil {
		return nil, err
	}
	count, err := uc.stats.DonationCount(ctx, query.ProfileID)
	if err != nil {
		return nil, err
	}
	return &DonationStatsResult{
		ProfileID: query.ProfileID,
		Total:     total,
		Count:     count,
	}, nil
}
