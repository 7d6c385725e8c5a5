package mappers

import (
	"fmt"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// CompanyProfileMapper handles the conversion between CompanyProfile
// domain entities and persistence models.
type CompanyProfileMapper interface {
	ToModel(p *profile.CompanyProfile) *models.CompanyProfileModel
	ToDomain(model *models.CompanyProfileModel) (*profile.CompanyProfile, error)
}

type CompanyProfileMapperImpl struct{}

// NewCompanyProfileMapper creates a new CompanyProfileMapper.
func NewCompanyProfileMapper() CompanyProfileMapper {
	return &CompanyProfileMapperImpl{}
}

func (m *CompanyProfileMapperImpl) ToModel(p *profile.CompanyProfile) *models.CompanyProfileModel {
	return &models.CompanyProfileModel{
		ID:             p.ID(),
		UserID:         p.UserID(),
		CompanyName:    p.CompanyName(),
		CompanyType:    p.CompanyType(),
		LicenseNumber:  p.LicenseNumber(),
		CompanySize:    p.CompanySize().String(),
		HeadquartersID: p.HeadquartersID(),
		Website:        p.Website(),
		LogoURL:        p.LogoURL(),
		PhotoURL:       p.PhotoURL(),
		Location:       p.Location(),
		Bio:            p.Bio(),
		CreatedAt:      p.CreatedAt().UnixMilli(),
		UpdatedAt:      p.UpdatedAt().UnixMilli(),
	}
}

func (m *CompanyProfileMapperImpl) ToDomain(model *models.CompanyProfileModel) (*profile.CompanyProfile, error) {
	companySize, err := vo.NewCompanySize(model.CompanySize)
	if err != nil {
		return nil, fmt.Errorf("invalid company size (id=%d): %w", model.ID, err)
	}

	return profile.ReconstructCompanyProfile(
		model.ID,
		model.UserID,
		model.CompanyName,
		model.CompanyType,
		model.LicenseNumber,
		companySize,
		model.HeadquartersID,
		model.Website,
		model.LogoURL,
		model.PhotoURL,
		model.Location,
		model.Bio,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
