package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/mappers"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
	"github.com/rawad-inc/rawad/internal/shared/db"
)

type SupporterProfileRepository struct {
	db     *gorm.DB
	mapper mappers.SupporterProfileMapper
}

func NewSupporterProfileRepository(database *gorm.DB) *SupporterProfileRepository {
	return &SupporterProfileRepository{
		db:     database,
		mapper: mappers.NewSupporterProfileMapper(),
	}
}

func (r *SupporterProfileRepository) Save(ctx context.Context, p *profile.SupporterProfile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save supporter profile: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *SupporterProfileRepository) Update(ctx context.Context, p *profile.SupporterProfile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SupporterProfileModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update supporter profile: %w", result.Error)
	}

	return nil
}

func (r *SupporterProfileRepository) FindByID(ctx context.Context, id uint) (*profile.SupporterProfile, error) {
	var model models.SupporterProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find supporter profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SupporterProfileRepository) FindByUserID(ctx context.Context, userID uint) (*profile.SupporterProfile, error) {
	var model models.SupporterProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find supporter profile by user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SupporterProfileRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.SupporterProfileModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete supporter profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("supporter profile not found")
	}
	return nil
}
