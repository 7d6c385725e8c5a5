package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rawad-inc/rawad/internal/domain/donation"
	"github.com/rawad-inc/rawad/internal/domain/profile"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type mockSupporterRepository struct {
	SaveFunc         func(ctx context.Context, p *profile.SupporterProfile) error
	UpdateFunc       func(ctx context.Context, p *profile.SupporterProfile) error
	FindByIDFunc     func(ctx context.Context, id uint) (*profile.SupporterProfile, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) (*profile.SupporterProfile, error)
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockSupporterRepository) Save(ctx context.Context, p *profile.SupporterProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockSupporterRepository) Update(ctx context.Context, p *profile.SupporterProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockSupporterRepository) FindByID(ctx context.Context, id uint) (*profile.SupporterProfile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSupporterRepository) FindByUserID(ctx context.Context, userID uint) (*profile.SupporterProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSupporterRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockDonationRepository struct {
	SaveFunc                 func(ctx context.Context, d *donation.Donation) error
	FindByIDFunc             func(ctx context.Context, id uint) (*donation.Donation, error)
	ListBySupporterFunc      func(ctx context.Context, supporterID uint, limit, offset int) ([]*donation.Donation, int64, error)
	SumAmountBySupporterFunc func(ctx context.Context, supporterID uint) (decimal.Decimal, error)
	CountBySupporterFunc     func(ctx context.Context, supporterID uint) (int64, error)
}

func (m *mockDonationRepository) Save(ctx context.Context, d *donation.Donation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDonationRepository) FindByID(ctx context.Context, id uint) (*donation.Donation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDonationRepository) ListBySupporter(ctx context.Context, supporterID uint, limit, offset int) ([]*donation.Donation, int64, error) {
	if m.ListBySupporterFunc != nil {
		return m.ListBySupporterFunc(ctx, supporterID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockDonationRepository) SumAmountBySupporter(ctx context.Context, supporterID uint) (decimal.Decimal, error) {
	if m.SumAmountBySupporterFunc != nil {
		return m.SumAmountBySupporterFunc(ctx, supporterID)
	}
	return decimal.Zero, nil
}

func (m *mockDonationRepository) CountBySupporter(ctx context.Context, supporterID uint) (int64, error) {
	if m.CountBySupporterFunc != nil {
		return m.CountBySupporterFunc(ctx, supporterID)
	}
	return 0, nil
}

type mockStatsCache struct {
	GetTotalFunc        func(ctx context.Context, profileID uint) (decimal.Decimal, bool, error)
	SetTotalFunc        func(ctx context.Context, profileID uint, total decimal.Decimal) error
	GetCountFunc        func(ctx context.Context, profileID uint) (int64, bool, error)
	SetCountFunc        func(ctx context.Context, profileID uint, count int64) error
	InvalidateStatsFunc func(ctx context.Context, profileID uint) error
}

func (m *mockStatsCache) GetTotal(ctx context.Context, profileID uint) (decimal.Decimal, bool, error) {
	if m.GetTotalFunc != nil {
		return m.GetTotalFunc(ctx, profileID)
	}
	return decimal.Zero, false, nil
}

func (m *mockStatsCache) SetTotal(ctx context.Context, profileID uint, total decimal.Decimal) error {
	if m.SetTotalFunc != nil {
		return m.SetTotalFunc(ctx, profileID, total)
	}
	return nil
}

func (m *mockStatsCache) GetCount(ctx context.Context, profileID uint) (int64, bool, error) {
	if m.GetCountFunc != nil {
		return m.GetCountFunc(ctx, profileID)
	}
	return 0, false, nil
}

func (m *mockStatsCache) SetCount(ctx context.Context, profileID uint, count int64) error {
	if m.SetCountFunc != nil {
		return m.SetCountFunc(ctx, profileID, count)
	}
	return nil
}

func (m *mockStatsCache) InvalidateStats(ctx context.Context, profileID uint) error {
	if m.InvalidateStatsFunc != nil {
		return m.InvalidateStatsFunc(ctx, profileID)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                     {}
func (noopLogger) Info(msg string, args ...any)                      {}
func (noopLogger) Warn(msg string, args ...any)                      {}
func (noopLogger) Error(msg string, args ...any)                     {}
func (n noopLogger) With(args ...any) logger.Interface               { return n }
func (n noopLogger) Named(name string) logger.Interface              { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{})   {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{})   {}
