package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type UpdateBadgeLevelCommand struct {
	ProfileID uint
}

type UpdateBadgeLevelResult struct {
	ProfileID  uint
	BadgeLevel string
	Changed    bool
}

// UpdateBadgeLevelUseCase recomputes a supporter's badge tier from the
// donation total. The write is skipped when the tier is unchanged, so
// repeated executions are idempotent.
type UpdateBadgeLevelUseCase struct {
	supporterRepo profile.SupporterRepository
	stats         *DonationStatsService
	logger        logger.Interface
}

func NewUpdateBadgeLevelUseCase(
	supporterRepo profile.SupporterRepository,
	stats *DonationStatsService,
	logger logger.Interface,
) *UpdateBadgeLevelUseCase {
	return &UpdateBadgeLevelUseCase{
		supporterRepo: supporterRepo,
		stats:         stats,
		logger:        logger,
	}
}

func (uc *UpdateBadgeLevelUseCase) Execute(ctx context.Context, cmd UpdateBadgeLevelCommand) (*UpdateBadgeLevelResult, error) {
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

	total, err := uc.stats.TotalDonations(ctx, cmd.ProfileID)
	if err != nil {
		return nil, err
	}

	level := vo.BadgeForTotal(total)
	changed, err := prof.ChangeBadgeLevel(level)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if changed {
		if err := uc.supporterRepo.Update(ctx, prof); err != nil {
			uc.logger.Errorw("failed to persist badge level", "profile_id", cmd.ProfileID, "level", level, "error", err)
			return nil, err
		}
		uc.logger.Infow("badge level updated", "profile_id", cmd.ProfileID, "level", level, "total", total)
	}

	return &UpdateBadgeLevelResult{
		ProfileID:  cmd.ProfileID,
		BadgeLevel: level.String(),
		Changed:    changed,
	}, nil
}
