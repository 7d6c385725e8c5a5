package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/mobile/dto"
	"github.com/rawad-inc/rawad/internal/domain/mobile"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

type GetMobileNumberQuery struct {
	UserID uint
}

type GetMobileNumberUseCase struct {
	mobileRepo mobile.Repository
}

func NewGetMobileNumberUseCase(mobileRepo mobile.Repository) *GetMobileNumberUseCase {
	return &GetMobileNumberUseCase{mobileRepo: mobileRepo}
}

func (uc *GetMobileNumberUseCase) Execute(ctx context.Context, query GetMobileNumberQuery) (*dto.MobileNumberDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	m, err := uc.mobileRepo.FindByUserID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("mobile number not found")
	}

	return &dto.MobileNumberDTO{
		ID:          m.ID(),
		UserID:      m.UserID(),
		Number:      m.Number(),
		CountryCode: m.CountryCode(),
		CountryName: m.CountryName(),
		CountryISO:  m.CountryISO(),
		CarrierName: m.CarrierName(),
		NumberType:  m.NumberType(),
		IsVerified:  m.IsVerified(),
		Status:      m.Status().String(),
		VerifiedAt:  m.VerifiedAt(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}, nil
}
