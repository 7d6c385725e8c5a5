package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
	vo "github.com/rawad-inc/rawad/internal/domain/mobile/valueobjects"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/mappers"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
	"github.com/rawad-inc/rawad/internal/shared/db"
)

// MobileNumberRepository persists mobile numbers. Every write runs
// PrepareSave first so verification state cannot drift outside the
// aggregate's transition methods, and MarkSaved after so the loaded
// instance can be written again.
type MobileNumberRepository struct {
	db     *gorm.DB
	mapper mappers.MobileNumberMapper
}

func NewMobileNumberRepository(database *gorm.DB) *MobileNumberRepository {
	return &MobileNumberRepository{
		db:     database,
		mapper: mappers.NewMobileNumberMapper(),
	}
}

func (r *MobileNumberRepository) Save(ctx context.Context, m *mobile.MobileNumber) error {
	if err := m.PrepareSave(); err != nil {
		return err
	}

	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save mobile number: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return err
	}

	m.MarkSaved()
	return nil
}

func (r *MobileNumberRepository) Update(ctx context.Context, m *mobile.MobileNumber) error {
	if err := m.PrepareSave(); err != nil {
		return err
	}

	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so cleared fields (verification code, expiry) are
	// written even when they are zero values.
	result := tx.
		Model(&models.MobileNumberModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update mobile number: %w", result.Error)
	}

	m.MarkSaved()
	return nil
}

func (r *MobileNumberRepository) FindByID(ctx context.Context, id uint) (*mobile.MobileNumber, error) {
	var model models.MobileNumberModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find mobile number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MobileNumberRepository) FindByUserID(ctx context.Context, userID uint) (*mobile.MobileNumber, error) {
	var model models.MobileNumberModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find mobile number by user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MobileNumberRepository) FindByNumber(ctx context.Context, number string) (*mobile.MobileNumber, error) {
	var model models.MobileNumberModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find mobile number by number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MobileNumberRepository) FindPendingWithCodeExpiredBefore(ctx context.Context, cutoff time.Time, limit int) ([]*mobile.MobileNumber, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.MobileNumberModel
	err := tx.
		Where("status = ?", vo.StatusPending.String()).
		Where("code_expires_at IS NOT NULL AND code_expires_at < ?", cutoff.UnixMilli()).
		Order("code_expires_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired pending numbers: %w", err)
	}

	numbers := make([]*mobile.MobileNumber, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, m)
	}

	return numbers, nil
}
