package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type RegisterMobileNumberCommand struct {
	UserID uint
	Number string
}

type RegisterMobileNumberResult struct {
	MobileNumberID uint
	Number         string
	Status         string
}

// RegisterMobileNumberUseCase attaches a mobile number to a user. Each
// user has at most one number and each number belongs to at most one user.
type RegisterMobileNumberUseCase struct {
	mobileRepo mobile.Repository
	parser     mobile.PhoneParser
	logger     logger.Interface
}

func NewRegisterMobileNumberUseCase(
	mobileRepo mobile.Repository,
	parser mobile.PhoneParser,
	logger logger.Interface,
) *RegisterMobileNumberUseCase {
	return &RegisterMobileNumberUseCase{
		mobileRepo: mobileRepo,
		parser:     parser,
		logger:     logger,
	}
}

func (uc *RegisterMobileNumberUseCase) Execute(ctx context.Context, cmd RegisterMobileNumberCommand) (*RegisterMobileNumberResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Number == "" {
		return nil, errors.NewValidationError("mobile number is required")
	}

	e164, err := uc.parser.Normalize(cmd.Number)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.mobileRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("user already has a mobile number")
	}

	taken, err := uc.mobileRepo.FindByNumber(ctx, e164)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, errors.NewConflictError("mobile number is already registered")
	}

	m, err := mobile.NewMobileNumber(cmd.UserID, cmd.Number, uc.parser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.mobileRepo.Save(ctx, m); err != nil {
		uc.logger.Errorw("failed to save mobile number", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("mobile number registered", "mobile_number_id", m.ID(), "user_id", cmd.UserID)

	return &RegisterMobileNumberResult{
		MobileNumberID: m.ID(),
		Number:         m.Number(),
		Status:         m.Status().String(),
	}, nil
}
