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

type CompanyProfileRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyProfileMapper
}

func NewCompanyProfileRepository(database *gorm.DB) *CompanyProfileRepository {
	return &CompanyProfileRepository{
		db:     database,
		mapper: mappers.NewCompanyProfileMapper(),
	}
}

func (r *CompanyProfileRepository) Save(ctx context.Context, p *profile.CompanyProfile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save company profile: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *CompanyProfileRepository) Update(ctx context.Context, p *profile.CompanyProfile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CompanyProfileModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update company profile: %w", result.Error)
	}

	return nil
}

func (r *CompanyProfileRepository) FindByID(ctx context.Context, id uint) (*profile.CompanyProfile, error) {
	var model models.CompanyProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyProfileRepository) FindByUserID(ctx context.Context, userID uint) (*profile.CompanyProfile, error) {
	var model models.CompanyProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company profile by user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyProfileRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*profile.CompanyProfile, error) {
	var model models.CompanyProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("license_number = ?", licenseNumber).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company profile by license: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyProfileRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CompanyProfileModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("company profile not found")
	}
	return nil
}
