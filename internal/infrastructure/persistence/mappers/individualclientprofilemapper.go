package mappers

import (
	"fmt"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// IndividualClientProfileMapper handles the conversion between
// IndividualClientProfile domain entities and persistence models.
type IndividualClientProfileMapper interface {
	ToModel(p *profile.IndividualClientProfile) *models.IndividualClientProfileModel
	ToDomain(model *models.IndividualClientProfileModel) (*profile.IndividualClientProfile, error)
}

type IndividualClientProfileMapperImpl struct{}

// NewIndividualClientProfileMapper creates a new IndividualClientProfileMapper.
func NewIndividualClientProfileMapper() IndividualClientProfileMapper {
	return &IndividualClientProfileMapperImpl{}
}

func (m *IndividualClientProfileMapperImpl) ToModel(p *profile.IndividualClientProfile) *models.IndividualClientProfileModel {
	return &models.IndividualClientProfileModel{
		ID:                  p.ID(),
		UserID:              p.UserID(),
		PublisherType:       p.PublisherType().String(),
		BusinessName:        p.BusinessName(),
		BusinessDescription: p.BusinessDescription(),
		PhotoURL:            p.PhotoURL(),
		Location:            p.Location(),
		Bio:                 p.Bio(),
		CreatedAt:           p.CreatedAt().UnixMilli(),
		UpdatedAt:           p.UpdatedAt().UnixMilli(),
	}
}

func (m *IndividualClientProfileMapperImpl) ToDomain(model *models.IndividualClientProfileModel) (*profile.IndividualClientProfile, error) {
	publisherType, err := vo.NewPublisherType(model.PublisherType)
	if err != nil {
		return nil, fmt.Errorf("invalid publisher type (id=%d): %w", model.ID, err)
	}

	return profile.ReconstructIndividualClientProfile(
		model.ID,
		model.UserID,
		publisherType,
		model.BusinessName,
		model.BusinessDescription,
		model.PhotoURL,
		model.Location,
		model.Bio,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
