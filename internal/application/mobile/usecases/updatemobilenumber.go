package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type UpdateMobileNumberCommand struct {
	UserID uint
	Number string
}

type UpdateMobileNumberResult struct {
	Number string
	Status string
}

// UpdateMobileNumberUseCase replaces the user's phone number. The change
// resets the verification state, so the user must verify again.
type UpdateMobileNumberUseCase struct {
	mobileRepo mobile.Repository
	parser     mobile.PhoneParser
	logger     logger.Interface
}

func NewUpdateMobileNumberUseCase(
	mobileRepo mobile.Repository,
	parser mobile.PhoneParser,
	logger logger.Interface,
) *UpdateMobileNumberUseCase {
	return &UpdateMobileNumberUseCase{
		mobileRepo: mobileRepo,
		parser:     parser,
		logger:     logger,
	}
}

func (uc *UpdateMobileNumberUseCase) Execute(ctx context.Context, cmd UpdateMobileNumberCommand) (*UpdateMobileNumberResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Number == "" {
		return nil, errors.NewValidationError("mobile number is required")
	}

	m, err := uc.mobileRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("mobile number not found")
	}

	e164, err := uc.parser.Normalize(cmd.Number)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	taken, err := uc.mobileRepo.FindByNumber(ctx, e164)
	if err != nil {
		return nil, err
	}
	if taken != nil && taken.ID() != m.ID() {
		return nil, errors.NewConflictError("mobile number is already registered")
	}

	if err := m.UpdateNumber(cmd.Number, uc.parser); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.mobileRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update mobile number", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("mobile number updated", "user_id", cmd.UserID, "number", m.Number())

	return &UpdateMobileNumberResult{
		Number: m.Number(),
		Status: m.Status().String(),
	}, nil
}
