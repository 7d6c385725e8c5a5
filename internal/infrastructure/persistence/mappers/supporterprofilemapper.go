package mappers

import (
	"fmt"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// SupporterProfileMapper handles the conversion between SupporterProfile
// domain entities and persistence models.
type SupporterProfileMapper interface {
	ToModel(p *profile.SupporterProfile) *models.SupporterProfileModel
	ToDomain(model *models.SupporterProfileModel) (*profile.SupporterProfile, error)
}

type SupporterProfileMapperImpl struct{}

// NewSupporterProfileMapper creates a new SupporterProfileMapper.
func NewSupporterProfileMapper() SupporterProfileMapper {
	return &SupporterProfileMapperImpl{}
}

func (m *SupporterProfileMapperImpl) ToModel(p *profile.SupporterProfile) *models.SupporterProfileModel {
	return &models.SupporterProfileModel{
		ID:         p.ID(),
		UserID:     p.UserID(),
		Country:    p.Country(),
		BadgeLevel: p.BadgeLevel().String(),
		PhotoURL:   p.PhotoURL(),
		Location:   p.Location(),
		Bio:        p.Bio(),
		CreatedAt:  p.CreatedAt().UnixMilli(),
		UpdatedAt:  p.UpdatedAt().UnixMilli(),
	}
}

func (m *SupporterProfileMapperImpl) ToDomain(model *models.SupporterProfileModel) (*profile.SupporterProfile, error) {
	badgeLevel, err := vo.NewBadgeLevel(model.BadgeLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid badge level (id=%d): %w", model.ID, err)
	}

	return profile.ReconstructSupporterProfile(
		model.ID,
		model.UserID,
		model.Country,
		badgeLevel,
		model.PhotoURL,
		model.Location,
		model.Bio,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
