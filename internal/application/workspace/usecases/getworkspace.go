package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/workspace/dto"
	"github.com/rawad-inc/rawad/internal/domain/workspace"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

type GetWorkSpaceQuery struct {
	WorkSpaceID uint
}

type GetWorkSpaceUseCase struct {
	workspaceRepo workspace.Repository
}

func NewGetWorkSpaceUseCase(workspaceRepo workspace.Repository) *GetWorkSpaceUseCase {
	return &GetWorkSpaceUseCase{workspaceRepo: workspaceRepo}
}

func (uc *GetWorkSpaceUseCase) Execute(ctx context.Context, query GetWorkSpaceQuery) (*dto.WorkSpaceDTO, error) {
	if query.WorkSpaceID == 0 {
		return nil, errors.NewValidationError("workspace ID is required")
	}

	ws, err := uc.workspaceRepo.FindByID(ctx, query.WorkSpaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, errors.NewNotFoundError("workspace not found")
	}

	result := toWorkSpaceDTO(ws)

	if ws.LocationID() != nil {
		loc, err := uc.workspaceRepo.FindLocationByID(ctx, *ws.LocationID())
		if err != nil {
			return nil, err
		}
		if loc != nil {
			result.Location = toLocationDTO(loc)
		}
	}

	return result, nil
}

func toWorkSpaceDTO(ws *workspace.WorkSpace) *dto.WorkSpaceDTO {
	return &dto.WorkSpaceDTO{
		ID:              ws.ID(),
		Name:            ws.Name(),
		OwnerName:       ws.OwnerName(),
		ContactNumber:   ws.ContactNumber(),
		HasFastInternet: ws.HasFastInternet(),
		OpeningTime:     ws.OpeningTime(),
		ClosingTime:     ws.ClosingTime(),
		PowerFrom:       ws.PowerFrom(),
		PowerTo:         ws.PowerTo(),
		CreatedAt:       ws.CreatedAt(),
	}
}

func toLocationDTO(loc *workspace.Location) *dto.LocationDTO {
	addr := loc.Address()
	return &dto.LocationDTO{
		ID:            loc.ID(),
		Latitude:      loc.Latitude(),
		Longitude:     loc.Longitude(),
		Line1:         addr.Line1,
		Line2:         addr.Line2,
		City:          addr.City,
		StateProvince: addr.StateProvince,
		PostalCode:    addr.PostalCode,
		Country:       addr.Country,
	}
}
