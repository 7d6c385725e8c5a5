package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	donationTotalPrefix = "donation_stats:total:"
	donationCountPrefix = "donation_stats:count:"
	donationStatsTTL    = time.Hour
)

// DonationStatsStore caches per-supporter donation aggregates in redis.
// Entries expire after an hour so a missed invalidation self-heals.
type DonationStatsStore struct {
	client *redis.Client
}

// NewDonationStatsStore creates a new DonationStatsStore instance
func NewDonationStatsStore(client *redis.Client) *DonationStatsStore {
	return &DonationStatsStore{client: client}
}

func donationTotalKey(profileID uint) string {
	return donationTotalPrefix + strconv.FormatUint(uint64(profileID), 10)
}

func donationCountKey(profileID uint) string {
	return donationCountPrefix + strconv.FormatUint(uint64(profileID), 10)
}

// GetTotal returns the cached donation total, reporting a miss with ok=false.
func (s *DonationStatsStore) GetTotal(ctx context.Context, profileID uint) (decimal.Decimal, bool, error) {
	val, err := s.client.Get(ctx, donationTotalKey(profileID)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to read donation total: %w", err)
	}

	total, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt donation total entry: %w", err)
	}
	return total, true, nil
}

// SetTotal stores the donation total with the standard TTL.
func (s *DonationStatsStore) SetTotal(ctx context.Context, profileID uint, total decimal.Decimal) error {
	if err := s.client.Set(ctx, donationTotalKey(profileID), total.String(), donationStatsTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache donation total: %w", err)
	}
	return nil
}

// GetCount returns the cached donation count, reporting a miss with ok=false.
func (s *DonationStatsStore) GetCount(ctx context.Context, profileID uint) (int64, bool, error) {
	val, err := s.client.Get(ctx, donationCountKey(profileID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read donation count: %w", err)
	}
	return val, true, nil
}

// SetCount stores the donation count with the standard TTL.
func (s *DonationStatsStore) SetCount(ctx context.Context, profileID uint, count int64) error {
	if err := s.client.Set(ctx, donationCountKey(profileID), count, donationStatsTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache donation count: %w", err)
	}
	return nil
}

// InvalidateStats drops both aggregate entries for the profile.
func (s *DonationStatsStore) InvalidateStats(ctx context.Context, profileID uint) error {
	if err := s.client.Del(ctx, donationTotalKey(profileID), donationCountKey(profileID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate donation stats: %w", err)
	}
	return nil
}
