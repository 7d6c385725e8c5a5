package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/workspace"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type GeocodeLocationCommand struct {
	LocationID uint
}

// GeocodeLocationUseCase resolves a location's address from its
// coordinates. It runs from the task dispatcher after a location is
// created or moved; a geocoding failure leaves the address blank and is
// retried by the dispatcher.
type GeocodeLocationUseCase struct {
	workspaceRepo workspace.Repository
	geocoder      Geocoder
	logger        logger.Interface
}

func NewGeocodeLocationUseCase(
	workspaceRepo workspace.Repository,
	geocoder Geocoder,
	logger logger.Interface,
) *GeocodeLocationUseCase {
	return &GeocodeLocationUseCase{
		workspaceRepo: workspaceRepo,
		geocoder:      geocoder,
		logger:        logger,
	}
}

func (uc *GeocodeLocationUseCase) Execute(ctx context.Context, cmd GeocodeLocationCommand) error {
	if cmd.LocationID == 0 {
		return errors.NewValidationError("location ID is required")
	}

	loc, err := uc.workspaceRepo.FindLocationByID(ctx, cmd.LocationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return errors.NewNotFoundError("location not found")
	}

	addr, err := uc.geocoder.ReverseGeocode(ctx, loc.Latitude(), loc.Longitude())
	if err != nil {
		uc.logger.Warnw("reverse geocoding failed", "location_id", cmd.LocationID, "error", err)
		return err
	}

	loc.SetAddress(addr)
	if err := uc.workspaceRepo.UpdateLocation(ctx, loc); err != nil {
		uc.logger.Errorw("failed to persist geocoded address", "location_id", cmd.LocationID, "error", err)
		return err
	}

	uc.logger.Infow("location geocoded", "location_id", cmd.LocationID, "city", addr.City, "country", addr.Country)
	return nil
}
