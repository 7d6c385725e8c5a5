package mappers

import (
	"github.com/rawad-inc/rawad/internal/domain/donation"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// DonationMapper handles the conversion between Donation domain entities
// and persistence models.
type DonationMapper interface {
	ToModel(d *donation.Donation) *models.DonationModel
	ToDomain(model *models.DonationModel) (*donation.Donation, error)
}

type DonationMapperImpl struct{}

// NewDonationMapper creates a new DonationMapper.
func NewDonationMapper() DonationMapper {
	return &DonationMapperImpl{}
}

func (m *DonationMapperImpl) ToModel(d *donation.Donation) *models.DonationModel {
	return &models.DonationModel{
		ID:          d.ID(),
		SupporterID: d.SupporterID(),
		Amount:      d.Amount(),
		CreatedAt:   d.CreatedAt().UnixMilli(),
	}
}

func (m *DonationMapperImpl) ToDomain(model *models.DonationModel) (*donation.Donation, error) {
	return donation.ReconstructDonation(
		model.ID,
		model.SupporterID,
		model.Amount,
		millisToTime(model.CreatedAt),
	)
}
