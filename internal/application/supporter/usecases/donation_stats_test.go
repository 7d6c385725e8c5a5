package usecases

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalDonations_CacheHitSkipsDatabase(t *testing.T) {
	cache := &mockStatsCache{
		GetTotalFunc: func(ctx context.Context, profileID uint) (decimal.Decimal, bool, error) {
			return decimal.NewFromInt(750), true, nil
		},
	}
	donations := &mockDonationRepository{
		SumAmountBySupporterFunc: func(ctx context.Context, supporterID uint) (decimal.Decimal, error) {
			t.Fatal("database should not be queried on cache hit")
			return decimal.Zero, nil
		},
	}
	stats := NewDonationStatsService(donations, cache, noopLogger{})

	total, err := stats.TotalDonations(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(750)))
}

func TestTotalDonations_MissPopulatesCache(t *testing.T) {
	var cachedTotal decimal.Decimal
	cache := &mockStatsCache{
		SetTotalFunc: func(ctx context.Context, profileID uint, total decimal.Decimal) error {
			cachedTotal = total
			return nil
		},
	}
	donations := &mockDonationRepository{
		SumAmountBySupporterFunc: func(ctx context.Context, supporterID uint) (decimal.Decimal, error) {
			return decimal.NewFromFloat(123.45), nil
		},
	}
	stats := NewDonationStatsService(donations, cache, noopLogger{})

	total, err := stats.TotalDonations(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(123.45)))
	assert.True(t, cachedTotal.Equal(total))
}

func TestTotalDonations_NeverNegative(t *testing.T) {
	donations := &mockDonationRepository{
		SumAmountBySupporterFunc: func(ctx context.Context, supporterID uint) (decimal.Decimal, error) {
			return decimal.NewFromInt(-10), nil
		},
	}
	stats := NewDonationStatsService(donations, &mockStatsCache{}, noopLogger{})

	total, err := stats.TotalDonations(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestDonationCount_MissPopulatesCache(t *testing.T) {
	var cachedCount int64
	cache := &mockStatsCache{
		SetCountFunc: func(ctx context.Context, profileID uint, count int64) error {
			cachedCount = count
			return nil
		},
	}
	donations := &mockDonationRepository{
		CountBySupporterFunc: func(ctx context.Context, supporterID uint) (int64, error) {
			return 7, nil
		},
	}
	stats := NewDonationStatsService(donations, cache, noopLogger{})

	count, err := stats.DonationCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.Equal(t, int64(7), cachedCount)
}
