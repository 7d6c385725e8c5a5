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

type IndividualClientProfileRepository struct {
	db     *gorm.DB
	mapper mappers.IndividualClientProfileMapper
}

func NewIndividualClientProfileRepository(database *gorm.DB) *IndividualClientProfileRepository {
	return &IndividualClientProfileRepository{
		db:     database,
		mapper: mappers.NewIndividualClientProfileMapper(),
	}
}

func (r *IndividualClientProfileRepository) Save(ctx context.Context, p *profile.IndividualClientProfile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save individual client profile: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *IndividualClientProfileRepository) Update(ctx context.Context, p *profile.IndividualClientProfile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IndividualClientProfileModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update individual client profile: %w", result.Error)
	}

	return nil
}

func (r *IndividualClientProfileRepository) FindByID(ctx context.Context, id uint) (*profile.IndividualClientProfile, error) {
	var model models.IndividualClientProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find individual client profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IndividualClientProfileRepository) FindByUserID(ctx context.Context, userID uint) (*profile.IndividualClientProfile, error) {
	var model models.IndividualClientProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find individual client profile by user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IndividualClientProfileRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.IndividualClientProfileModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete individual client profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("individual client profile not found")
	}
	return nil
}
