package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rawad-inc/rawad/internal/domain/donation"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/mappers"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
	"github.com/rawad-inc/rawad/internal/shared/db"
)

type DonationRepository struct {
	db     *gorm.DB
	mapper mappers.DonationMapper
}

func NewDonationRepository(database *gorm.DB) *DonationRepository {
	return &DonationRepository{
		db:     database,
		mapper: mappers.NewDonationMapper(),
	}
}

func (r *DonationRepository) Save(ctx context.Context, d *donation.Donation) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save donation: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *DonationRepository) FindByID(ctx context.Context, id uint) (*donation.Donation, error) {
	var model models.DonationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find donation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DonationRepository) ListBySupporter(ctx context.Context, supporterID uint, limit, offset int) ([]*donation.Donation, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.DonationModel{}).Where("supporter_id = ?", supporterID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	var rows []models.DonationModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list donations: %w", err)
	}

	donations := make([]*donation.Donation, 0, len(rows))
	for i := range rows {
		d, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		donations = append(donations, d)
	}

	return donations, total, nil
}

func (r *DonationRepository) SumAmountBySupporter(ctx context.Context, supporterID uint) (decimal.Decimal, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var sum decimal.Decimal
	err := tx.Model(&models.DonationModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("supporter_id = ?", supporterID).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum donations: %w", err)
	}

	return sum, nil
}

func (r *DonationRepository) CountBySupporter(ctx context.Context, supporterID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.DonationModel{}).
		Where("supporter_id = ?", supporterID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count donations: %w", err)
	}

	return count, nil
}
