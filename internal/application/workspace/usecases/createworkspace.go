package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/workspace"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type CreateWorkSpaceCommand struct {
	Name          string
	OwnerName     string
	ContactNumber string
	Latitude      *float64
	Longitude     *float64
	FastInternet  bool
	OpeningTime   string
	ClosingTime   string
	PowerFrom     string
	PowerTo       string
}

type CreateWorkSpaceResult struct {
	WorkSpaceID uint
	LocationID  *uint
}

// CreateWorkSpaceUseCase creates a workspace, optionally with a location.
// When coordinates are given the address resolution runs as a background
// geocode task after the save.
type CreateWorkSpaceUseCase struct {
	workspaceRepo workspace.Repository
	geocodeTask   GeocodeLocationExecutor
	dispatcher    Dispatcher
	logger        logger.Interface
}

func NewCreateWorkSpaceUseCase(
	workspaceRepo workspace.Repository,
	geocodeTask GeocodeLocationExecutor,
	dispatcher Dispatcher,
	logger logger.Interface,
) *CreateWorkSpaceUseCase {
	return &CreateWorkSpaceUseCase{
		workspaceRepo: workspaceRepo,
		geocodeTask:   geocodeTask,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

func (uc *CreateWorkSpaceUseCase) Execute(ctx context.Context, cmd CreateWorkSpaceCommand) (*CreateWorkSpaceResult, error) {
	existing, err := uc.workspaceRepo.FindByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a workspace with this name already exists")
	}

	ws, err := workspace.NewWorkSpace(cmd.Name, cmd.OwnerName, cmd.ContactNumber)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	ws.SetAmenities(cmd.FastInternet, cmd.PowerFrom, cmd.PowerTo)
	ws.SetHours(cmd.OpeningTime, cmd.ClosingTime)

	var locationID *uint
	if cmd.Latitude != nil && cmd.Longitude != nil {
		loc, err := workspace.NewLocation(*cmd.Latitude, *cmd.Longitude)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.workspaceRepo.SaveLocation(ctx, loc); err != nil {
			uc.logger.Errorw("failed to save location", "error", err)
			return nil, err
		}
		id := loc.ID()
		locationID = &id
		if err := ws.AttachLocation(id); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.workspaceRepo.Save(ctx, ws); err != nil {
		uc.logger.Errorw("failed to save workspace", "name", cmd.Name, "error", err)
		return nil, err
	}

	if locationID != nil {
		id := *locationID
		uc.dispatcher.Submit("geocode_location", func(taskCtx context.Context) error {
			return uc.geocodeTask.Execute(taskCtx, GeocodeLocationCommand{LocationID: id})
		})
	}

	uc.logger.Infow("workspace created", "workspace_id", ws.ID(), "name", ws.Name())

	return &CreateWorkSpaceResult{
		WorkSpaceID: ws.ID(),
		LocationID:  locationID,
	}, nil
}
