package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	supporterUC "github.com/rawad-inc/rawad/internal/application/supporter/usecases"
	"github.com/rawad-inc/rawad/internal/domain/donation"
	"github.com/rawad-inc/rawad/internal/domain/profile"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type RecordDonationCommand struct {
	SupporterID uint
	Amount      decimal.Decimal
}

type RecordDonationResult struct {
	DonationID uint
	Amount     string
	BadgeLevel string
	CreatedAt  time.Time
}

// RecordDonationUseCase persists a donation, drops the cached stats for
// the supporter and recomputes the badge tier. The donation itself is the
// source of truth; cache and badge failures after the save are logged and
// do not fail the request.
type RecordDonationUseCase struct {
	donationRepo  donation.Repository
	supporterRepo profile.SupporterRepository
	stats         *supporterUC.DonationStatsService
	badgeUpdater  supporterUC.UpdateBadgeLevelExecutor
	logger        logger.Interface
}

func NewRecordDonationUseCase(
	donationRepo donation.Repository,
	supporterRepo profile.SupporterRepository,
	stats *supporterUC.DonationStatsService,
	badgeUpdater supporterUC.UpdateBadgeLevelExecutor,
	logger logger.Interface,
) *RecordDonationUseCase {
	return &RecordDonationUseCase{
		donationRepo:  donationRepo,
		supporterRepo: supporterRepo,
		stats:         stats,
		badgeUpdater:  badgeUpdater,
		logger:        logger,
	}
}

func (uc *RecordDonationUseCase) Execute(ctx context.Context, cmd RecordDonationCommand) (*RecordDonationResult, error) {
	if cmd.SupporterID == 0 {
		return nil, errors.NewValidationError("supporter ID is required")
	}

	prof, err := uc.supporterRepo.FindByID(ctx, cmd.SupporterID)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return nil, errors.NewNotFoundError("supporter profile not found")
	}

	d, err := donation.NewDonation(cmd.SupporterID, cmd.Amount)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.donationRepo.Save(ctx, d); err != nil {
		uc.logger.Errorw("failed to save donation", "supporter_id", cmd.SupporterID, "error", err)
		return nil, err
	}

	uc.stats.InvalidateStats(ctx, cmd.SupporterID)

	badgeLevel := prof.BadgeLevel().String()
	badge, err := uc.badgeUpdater.Execute(ctx, supporterUC.UpdateBadgeLevelCommand{ProfileID: cmd.SupporterID})
	if err != nil {
		uc.logger.Warnw("badge recompute after donation failed", "supporter_id", cmd.SupporterID, "error", err)
	} else {
		badgeLevel = badge.BadgeLevel
	}

	uc.logger.Infow("donation recorded", "donation_id", d.ID(), "supporter_id", cmd.SupporterID, "amount", d.Amount())

	return &RecordDonationResult{
		DonationID: d.ID(),
		Amount:     d.Amount().StringFixed(2),
		BadgeLevel: badgeLevel,
		CreatedAt:  d.CreatedAt(),
	}, nil
}
