package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rawad-inc/rawad/internal/domain/rating"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/mappers"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
	"github.com/rawad-inc/rawad/internal/shared/db"
)

type RatingRepository struct {
	db     *gorm.DB
	mapper mappers.RatingMapper
}

func NewRatingRepository(database *gorm.DB) *RatingRepository {
	return &RatingRepository{
		db:     database,
		mapper: mappers.NewRatingMapper(),
	}
}

func (r *RatingRepository) Save(ctx context.Context, rt *rating.Rating) error {
	model := r.mapper.ToModel(rt)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	return rt.SetID(model.ID)
}

func (r *RatingRepository) FindByID(ctx context.Context, id uint) (*rating.Rating, error) {
	var model models.RatingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RatingRepository) ListByJobSeeker(ctx context.Context, jobSeekerID uint, limit, offset int) ([]*rating.Rating, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RatingModel{}).Where("job_seeker_id = ?", jobSeekerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ratings: %w", err)
	}

	var rows []models.RatingModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list ratings: %w", err)
	}

	ratings := make([]*rating.Rating, 0, len(rows))
	for i := range rows {
		rt, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		ratings = append(ratings, rt)
	}

	return ratings, total, nil
}

func (r *RatingRepository) AverageByJobSeeker(ctx context.Context, jobSeekerID uint) (float64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var average float64
	err := tx.Model(&models.RatingModel{}).
		Select("COALESCE(AVG(score), 0)").
		Where("job_seeker_id = ?", jobSeekerID).
		Scan(&average).Error
	if err != nil {
		return 0, fmt.Errorf("failed to average ratings: %w", err)
	}

	return average, nil
}

func (r *RatingRepository) ExistsByRaterAndJobSeeker(ctx context.Context, raterID, jobSeekerID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.RatingModel{}).
		Where("rater_id = ? AND job_seeker_id = ?", raterID, jobSeekerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check rating existence: %w", err)
	}

	return count > 0, nil
}
