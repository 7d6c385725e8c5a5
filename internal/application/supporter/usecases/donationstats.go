package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rawad-inc/rawad/internal/domain/donation"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

// DonationStatsService resolves a supporter's donation total and count,
// reading through the cache. Cache failures fall back to the database and
// are logged, never surfaced.
type DonationStatsService struct {
	donationRepo donation.Repository
	cache        DonationStatsCache
	logger       logger.Interface
}

func NewDonationStatsService(
	donationRepo donation.Repository,
	cache DonationStatsCache,
	logger logger.Interface,
) *DonationStatsService {
	return &DonationStatsService{
		donationRepo: donationRepo,
		cache:        cache,
		logger:       logger,
	}
}

// TotalDonations returns the sum of all donations for the profile,
// never negative.
func (s *DonationStatsService) TotalDonations(ctx context.Context, profileID uint) (decimal.Decimal, error) {
	if total, ok, err := s.cache.GetTotal(ctx, profileID); err != nil {
		s.logger.Warnw("donation total cache read failed, falling back to database", "profile_id", profileID, "error", err)
	} else if ok {
		return total, nil
	}

	total, err := s.donationRepo.SumAmountBySupporter(ctx, profileID)
	if err != nil {
		return decimal.Zero, err
	}
	if total.IsNegative() {
		total = decimal.Zero
	}

	if err := s.cache.SetTotal(ctx, profileID, total); err != nil {
		s.logger.Warnw("failed to cache donation total", "profile_id", profileID, "error", err)
	}
	return total, nil
}

// DonationCount returns the number of donations for the profile.
func (s *DonationStatsService) DonationCount(ctx context.Context, profileID uint) (int64, error) {
	if count, ok, err := s.cache.GetCount(ctx, profileID); err != nil {
		s.logger.Warnw("donation count cache read failed, falling back to database", "profile_id", profileID, "error", err)
	} else if ok {
		return count, nil
	}

	count, err := s.donationRepo.CountBySupporter(ctx, profileID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.SetCount(ctx, profileID, count); err != nil {
		s.logger.Warnw("failed to cache donation count", "profile_id", profileID, "error", err)
	}
	return count, nil
}

// InvalidateStats drops both cached figures for the profile. Called after
// a new donation so the next read recomputes.
func (s *DonationStatsService) InvalidateStats(ctx context.Context, profileID uint) {
	if err := s.cache.InvalidateStats(ctx, profileID); err != nil {
		s.logger.Warnw("failed to invalidate donation stats cache", "profile_id", profileID, "error", err)
	}
}
