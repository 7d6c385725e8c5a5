package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type UpdateSupporterProfileCommand struct {
	ProfileID uint
	Country   string
	PhotoURL  string
	Location  string
	Bio       string
}

type UpdateSupporterProfileResult struct {
	ProfileID  uint
	BadgeLevel string
}

// UpdateSupporterProfileUseCase edits the supporter's profile fields and
// re-runs the badge recomputation, so a stale badge is corrected on the
// next profile save.
type UpdateSupporterProfileUseCase struct {
	supporterRepo profile.SupporterRepository
	badgeUpdater  UpdateBadgeLevelExecutor
	logger        logger.Interface
}

func NewUpdateSupporterProfileUseCase(
	supporterRepo profile.SupporterRepository,
	badgeUpdater UpdateBadgeLevelExecutor,
	logger logger.Interface,
) *UpdateSupporterProfileUseCase {
	return &UpdateSupporterProfileUseCase{
		supporterRepo: supporterRepo,
		badgeUpdater:  badgeUpdater,
		logger:        logger,
	}
}

func (uc *UpdateSupporterProfileUseCase) Execute(ctx context.Context, cmd UpdateSupporterProfileCommand) (*UpdateSupporterProfileResult, error) {
	if cmd.ProfileID == 0 {
		return nil, errors.NewValidationError("profile ID is required")
	}

	prof, err := uc.supporterRepo.FindByID(ctx, cmd.ProfileID)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return nil, errors.NewNotFoundError("supporter profile not found")
	}

	prof.UpdateDetails(cmd.Country, cmd.PhotoURL, cmd.Location, cmd.Bio)
	if err := uc.supporterRepo.Update(ctx, prof); err != nil {
		return nil, err
	}

	badge, err := uc.badgeUpdater.Execute(ctx, UpdateBadgeLevelCommand{ProfileID: cmd.ProfileID})
	if err != nil {
		uc.logger.Warnw("badge recompute after profile update failed", "profile_id", cmd.ProfileID, "error", err)
		return &UpdateSupporterProfileResult{
			ProfileID:  cmd.ProfileID,
			BadgeLevel: prof.BadgeLevel().String(),
		}, nil
	}

	return &UpdateSupporterProfileResult{
		ProfileID:  cmd.ProfileID,
		BadgeLevel: badge.BadgeLevel,
	}, nil
}
