package usecases

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	"github.com/rawad-inc/rawad/internal/domain/rating"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type mockRatingRepository struct {
	SaveFunc                      func(ctx context.Context, r *rating.Rating) error
	FindByIDFunc                  func(ctx context.Context, id uint) (*rating.Rating, error)
	ListByJobSeekerFunc           func(ctx context.Context, jobSeekerID uint, limit, offset int) ([]*rating.Rating, int64, error)
	AverageByJobSeekerFunc        func(ctx context.Context, jobSeekerID uint) (float64, error)
	ExistsByRaterAndJobSeekerFunc func(ctx context.Context, raterID, jobSeekerID uint) (bool, error)
}

func (m *mockRatingRepository) Save(ctx context.Context, r *rating.Rating) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRatingRepository) FindByID(ctx context.Context, id uint) (*rating.Rating, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRatingRepository) ListByJobSeeker(ctx context.Context, jobSeekerID uint, limit, offset int) ([]*rating.Rating, int64, error) {
	if m.ListByJobSeekerFunc != nil {
		return m.ListByJobSeekerFunc(ctx, jobSeekerID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockRatingRepository) AverageByJobSeeker(ctx context.Context, jobSeekerID uint) (float64, error) {
	if m.AverageByJobSeekerFunc != nil {
		return m.AverageByJobSeekerFunc(ctx, jobSeekerID)
	}
	return 0, nil
}

func (m *mockRatingRepository) ExistsByRaterAndJobSeeker(ctx context.Context, raterID, jobSeekerID uint) (bool, error) {
	if m.ExistsByRaterAndJobSeekerFunc != nil {
		return m.ExistsByRaterAndJobSeekerFunc(ctx, raterID, jobSeekerID)
	}
	return false, nil
}

type mockJobSeekerRepository struct {
	SaveFunc         func(ctx context.Context, p *profile.JobSeekerProfile) error
	UpdateFunc       func(ctx context.Context, p *profile.JobSeekerProfile) error
	FindByIDFunc     func(ctx context.Context, id uint) (*profile.JobSeekerProfile, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) (*profile.JobSeekerProfile, error)
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockJobSeekerRepository) Save(ctx context.Context, p *profile.JobSeekerProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockJobSeekerRepository) Update(ctx context.Context, p *profile.JobSeekerProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockJobSeekerRepository) FindByID(ctx context.Context, id uint) (*profile.JobSeekerProfile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockJobSeekerRepository) FindByUserID(ctx context.Context, userID uint) (*profile.JobSeekerProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockJobSeekerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockJobSeekerRepository) ResetWeeklyApplications(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type mockRatingCache struct {
	GetFunc        func(ctx context.Context, jobSeekerID uint) (float64, bool, error)
	SetFunc        func(ctx context.Context, jobSeekerID uint, average float64) error
	InvalidateFunc func(ctx context.Context, jobSeekerID uint) error
}

func (m *mockRatingCache) Get(ctx context.Context, jobSeekerID uint) (float64, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, jobSeekerID)
	}
	return 0, false, nil
}

func (m *mockRatingCache) Set(ctx context.Context, jobSeekerID uint, average float64) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, jobSeekerID, average)
	}
	return nil
}

func (m *mockRatingCache) Invalidate(ctx context.Context, jobSeekerID uint) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, jobSeekerID)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
