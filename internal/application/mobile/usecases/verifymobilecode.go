package usecases

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type VerifyMobileCodeCommand struct {
	UserID uint
	Code   string
}

type VerifyMobileCodeResult struct {
	Verified bool
	Message  string
}

// VerifyMobileCodeUseCase checks a submitted code. Both the success path
// and the expiry side effect change state, so the record is persisted in
// either case; a plain mismatch leaves it untouched.
type VerifyMobileCodeUseCase struct {
	mobileRepo mobile.Repository
	logger     logger.Interface
}

func NewVerifyMobileCodeUseCase(mobileRepo mobile.Repository, logger logger.Interface) *VerifyMobileCodeUseCase {
	return &VerifyMobileCodeUseCase{
		mobileRepo: mobileRepo,
		logger:     logger,
	}
}

func (uc *VerifyMobileCodeUseCase) Execute(ctx context.Context, cmd VerifyMobileCodeCommand) (*VerifyMobileCodeResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Code == "" {
		return nil, errors.NewValidationError("verification code is required")
	}

	m, err := uc.mobileRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("mobile number not found")
	}

	statusBefore := m.Status()
	ok, message := m.VerifyCode(cmd.Code, time.Now())

	if ok || m.Status() != statusBefore {
		if err := uc.mobileRepo.Update(ctx, m); err != nil {
			uc.logger.Errorw("failed to persist verification result", "user_id", cmd.UserID, "error", err)
			return nil, err
		}
	}

	if ok {
		uc.logger.Infow("mobile number verified", "user_id", cmd.UserID, "number", m.Number())
	}

	return &VerifyMobileCodeResult{Verified: ok, Message: message}, nil
}
