package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/donation/dto"
	"github.com/rawad-inc/rawad/internal/domain/donation"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

const defaultPageSize = 20

type ListDonationsQuery struct {
	SupporterID uint
	Limit       int
	Offset      int
}

type ListDonationsResult struct {
	Donations []dto.DonationDTO
	Total     int64
}

type ListDonationsUseCase struct {
	donationRepo donation.Repository
}

func NewListDonationsUseCase(donationRepo donation.Repository) *ListDonationsUseCase {
	return &ListDonationsUseCase{donationRepo: donationRepo}
}

func (uc *ListDonationsUseCase) Execute(ctx context.Context, query ListDonationsQuery) (*ListDonationsResult, error) {
	if query.SupporterID == 0 {
		return nil, errors.NewValidationError("supporter ID is required")
	}
	if query.Limit <= 0 {
		query.Limit = defaultPageSize
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	donations, total, err := uc.donationRepo.ListBySupporter(ctx, query.SupporterID, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DonationDTO, 0, len(donations))
	for _, d := range donations {
		items = append(items, dto.DonationDTO{
			ID:          d.ID(),
			SupporterID: d.SupporterID(),
			Amount:      d.Amount().StringFixed(2),
			CreatedAt:   d.CreatedAt(),
		})
	}

	return &ListDonationsResult{Donations: items, Total: total}, nil
}
