package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/supporter/dto"
	"github.com/rawad-inc/rawad/internal/domain/profile"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

type GetSupporterProfileQuery struct {
	ProfileID uint
}

type GetSupporterProfileUseCase struct {
	supporterRepo profile.SupporterRepository
	stats         *DonationStatsService
}

func NewGetSupporterProfileUseCase(
	supporterRepo profile.SupporterRepository,
	stats *DonationStatsService,
) *GetSupporterProfileUseCase {
	return &GetSupporterProfileUseCase{
		supporterRepo: supporterRepo,
		stats:         stats,
	}
}

func (uc *GetSupporterProfileUseCase) Execute(ctx context.Context, query GetSupporterProfileQuery) (*dto.SupporterProfileDTO, error) {
	if query.ProfileID == 0 {
		return nil, errors.NewValidationError("profile ID is required")
	}

	prof, err := uc.supporterRepo.FindByID(ctx, query.ProfileID)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return nil, errors.NewNotFoundError("supporter profile not found")
	}

	total, err := uc.stats.TotalDonations(ctx, prof.ID())
	if err != nil {
		return nil, err
	}
	count, err := uc.stats.DonationCount(ctx, prof.ID())
	if err != nil {
		return nil, err
	}

	return &dto.SupporterProfileDTO{
		ID:             prof.ID(),
		UserID:         prof.UserID(),
		Country:        prof.Country(),
		BadgeLevel:     prof.BadgeLevel().String(),
		BadgeLabel:     prof.BadgeLevel().Label(),
		PhotoURL:       prof.PhotoURL(),
		Location:       prof.Location(),
		Bio:            prof.Bio(),
		TotalDonations: total.StringFixed(2),
		DonationCount:  count,
		CreatedAt:      prof.CreatedAt(),
		UpdatedAt:      prof.UpdatedAt(),
	}, nil
}
