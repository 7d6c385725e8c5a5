package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/mappers"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
	"github.com/rawad-inc/rawad/internal/shared/db"
)

type JobSeekerProfileRepository struct {
	db     *gorm.DB
	mapper mappers.JobSeekerProfileMapper
}

func NewJobSeekerProfileRepository(database *gorm.DB) *JobSeekerProfileRepository {
	return &JobSeekerProfileRepository{
		db:     database,
		mapper: mappers.NewJobSeekerProfileMapper(),
	}
}

func (r *JobSeekerProfileRepository) Save(ctx context.Context, p *profile.JobSeekerProfile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save job seeker profile: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *JobSeekerProfileRepository) Update(ctx context.Context, p *profile.JobSeekerProfile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.JobSeekerProfileModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update job seeker profile: %w", result.Error)
	}

	return nil
}

func (r *JobSeekerProfileRepository) FindByID(ctx context.Context, id uint) (*profile.JobSeekerProfile, error) {
	var model models.JobSeekerProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job seeker profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *JobSeekerProfileRepository) FindByUserID(ctx context.Context, userID uint) (*profile.JobSeekerProfile, error) {
	var model models.JobSeekerProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job seeker profile by user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *JobSeekerProfileRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.JobSeekerProfileModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job seeker profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job seeker profile not found")
	}
	return nil
}

func (r *JobSeekerProfileRepository) ResetWeeklyApplications(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now()
	result := tx.
		Model(&models.JobSeekerProfileModel{}).
		Where("last_application_reset < ?", cutoff.UnixMilli()).
		Updates(map[string]interface{}{
			"weekly_applications_count": 0,
			"last_application_reset":    now.UnixMilli(),
			"updated_at":                now.UnixMilli(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset weekly applications: %w", result.Error)
	}

	return result.RowsAffected, nil
}
