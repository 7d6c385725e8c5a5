package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rawad-inc/rawad/internal/domain/workspace"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/mappers"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
	"github.com/rawad-inc/rawad/internal/shared/db"
)

type WorkSpaceRepository struct {
	db     *gorm.DB
	mapper mappers.WorkSpaceMapper
}

func NewWorkSpaceRepository(database *gorm.DB) *WorkSpaceRepository {
	return &WorkSpaceRepository{
		db:     database,
		mapper: mappers.NewWorkSpaceMapper(),
	}
}

func (r *WorkSpaceRepository) Save(ctx context.Context, w *workspace.WorkSpace) error {
	model := r.mapper.ToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save workspace: %w", err)
	}

	return w.SetID(model.ID)
}

func (r *WorkSpaceRepository) Update(ctx context.Context, w *workspace.WorkSpace) error {
	model := r.mapper.ToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.WorkSpaceModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update workspace: %w", result.Error)
	}

	return nil
}

func (r *WorkSpaceRepository) FindByID(ctx context.Context, id uint) (*workspace.WorkSpace, error) {
	var model models.WorkSpaceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find workspace: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkSpaceRepository) FindByName(ctx context.Context, name string) (*workspace.WorkSpace, error) {
	var model models.WorkSpaceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find workspace by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkSpaceRepository) List(ctx context.Context, limit, offset int) ([]*workspace.WorkSpace, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.WorkSpaceModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count workspaces: %w", err)
	}

	var rows []models.WorkSpaceModel
	if err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list workspaces: %w", err)
	}

	workspaces := make([]*workspace.WorkSpace, 0, len(rows))
	for i := range rows {
		w, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		workspaces = append(workspaces, w)
	}

	return workspaces, total, nil
}

func (r *WorkSpaceRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.WorkSpaceModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete workspace: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("workspace not found")
	}
	return nil
}

func (r *WorkSpaceRepository) SaveLocation(ctx context.Context, l *workspace.Location) error {
	model := r.mapper.LocationToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}

	return l.SetID(model.ID)
}

func (r *WorkSpaceRepository) UpdateLocation(ctx context.Context, l *workspace.Location) error {
	model := r.mapper.LocationToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so a cleared address is written back as blanks.
	result := tx.
		Model(&models.LocationModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update location: %w", result.Error)
	}

	return nil
}

func (r *WorkSpaceRepository) FindLocationByID(ctx context.Context, id uint) (*workspace.Location, error) {
	var model models.LocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	return r.mapper.LocationToDomain(&model)
}
