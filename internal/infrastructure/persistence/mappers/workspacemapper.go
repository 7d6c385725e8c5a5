package mappers

import (
	"github.com/rawad-inc/rawad/internal/domain/workspace"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// WorkSpaceMapper handles the conversion between WorkSpace/Location domain
// entities and persistence models.
type WorkSpaceMapper interface {
	ToModel(w *workspace.WorkSpace) *models.WorkSpaceModel
	ToDomain(model *models.WorkSpaceModel) (*workspace.WorkSpace, error)

	LocationToModel(l *workspace.Location) *models.LocationModel
	LocationToDomain(model *models.LocationModel) (*workspace.Location, error)
}

type WorkSpaceMapperImpl struct{}

// NewWorkSpaceMapper creates a new WorkSpaceMapper.
func NewWorkSpaceMapper() WorkSpaceMapper {
	return &WorkSpaceMapperImpl{}
}

func (m *WorkSpaceMapperImpl) ToModel(w *workspace.WorkSpace) *models.WorkSpaceModel {
	return &models.WorkSpaceModel{
		ID:              w.ID(),
		Name:            w.Name(),
		OwnerName:       w.OwnerName(),
		ContactNumber:   w.ContactNumber(),
		LocationID:      w.LocationID(),
		HasFastInternet: w.HasFastInternet(),
		OpeningTime:     w.OpeningTime(),
		ClosingTime:     w.ClosingTime(),
		PowerFrom:       w.PowerFrom(),
		PowerTo:         w.PowerTo(),
		CreatedAt:       w.CreatedAt().UnixMilli(),
		UpdatedAt:       w.UpdatedAt().UnixMilli(),
	}
}

func (m *WorkSpaceMapperImpl) ToDomain(model *models.WorkSpaceModel) (*workspace.WorkSpace, error) {
	return workspace.ReconstructWorkSpace(
		model.ID,
		model.Name,
		model.OwnerName,
		model.ContactNumber,
		model.LocationID,
		model.HasFastInternet,
		model.OpeningTime,
		model.ClosingTime,
		model.PowerFrom,
		model.PowerTo,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *WorkSpaceMapperImpl) LocationToModel(l *workspace.Location) *models.LocationModel {
	addr := l.Address()
	return &models.LocationModel{
		ID:            l.ID(),
		Latitude:      l.Latitude(),
		Longitude:     l.Longitude(),
		AddressLine1:  addr.Line1,
		AddressLine2:  addr.Line2,
		City:          addr.City,
		StateProvince: addr.StateProvince,
		PostalCode:    addr.PostalCode,
		Country:       addr.Country,
		CreatedAt:     l.CreatedAt().UnixMilli(),
		UpdatedAt:     l.UpdatedAt().UnixMilli(),
	}
}

func (m *WorkSpaceMapperImpl) LocationToDomain(model *models.LocationModel) (*workspace.Location, error) {
	return workspace.ReconstructLocation(
		model.ID,
		model.Latitude,
		model.Longitude,
		workspace.Address{
			Line1:         model.AddressLine1,
			Line2:         model.AddressLine2,
			City:          model.City,
			StateProvince: model.StateProvince,
			PostalCode:    model.PostalCode,
			Country:       model.Country,
		},
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
