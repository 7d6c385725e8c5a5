package mappers

import (
	"fmt"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
	vo "github.com/rawad-inc/rawad/internal/domain/mobile/valueobjects"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// MobileNumberMapper handles the conversion between MobileNumber domain
// entities and persistence models.
type MobileNumberMapper interface {
	ToModel(m *mobile.MobileNumber) *models.MobileNumberModel
	ToDomain(model *models.MobileNumberModel) (*mobile.MobileNumber, error)
}

type MobileNumberMapperImpl struct{}

// NewMobileNumberMapper creates a new MobileNumberMapper.
func NewMobileNumberMapper() MobileNumberMapper {
	return &MobileNumberMapperImpl{}
}

func (mp *MobileNumberMapperImpl) ToModel(m *mobile.MobileNumber) *models.MobileNumberModel {
	return &models.MobileNumberModel{
		ID:                  m.ID(),
		UserID:              m.UserID(),
		Number:              m.Number(),
		CountryCode:         m.CountryCode(),
		CountryName:         m.CountryName(),
		CountryISO:          m.CountryISO(),
		CarrierName:         m.CarrierName(),
		NumberType:          m.NumberType(),
		IsVerified:          m.IsVerified(),
		Status:              m.Status().String(),
		VerificationCode:    m.VerificationCode(),
		CodeExpiresAt:       timePtrToMillisPtr(m.CodeExpiresAt()),
		VerifiedAt:          timePtrToMillisPtr(m.VerifiedAt()),
		LastCodeGeneratedAt: timePtrToMillisPtr(m.LastCodeGeneratedAt()),
		CreatedAt:           m.CreatedAt().UnixMilli(),
		UpdatedAt:           m.UpdatedAt().UnixMilli(),
	}
}

func (mp *MobileNumberMapperImpl) ToDomain(model *models.MobileNumberModel) (*mobile.MobileNumber, error) {
	status, err := vo.NewVerificationStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid verification status (id=%d): %w", model.ID, err)
	}

	return mobile.ReconstructMobileNumber(
		model.ID,
		model.UserID,
		model.Number,
		model.CountryCode,
		model.CountryName,
		model.CountryISO,
		model.CarrierName,
		model.NumberType,
		model.IsVerified,
		status,
		model.VerificationCode,
		millisPtrToTimePtr(model.CodeExpiresAt),
		millisPtrToTimePtr(model.VerifiedAt),
		millisPtrToTimePtr(model.LastCodeGeneratedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
