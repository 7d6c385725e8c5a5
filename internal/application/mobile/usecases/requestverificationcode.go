package usecases

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type RequestVerificationCodeCommand struct {
	UserID uint
}

type RequestVerificationCodeResult struct {
	ExpiresAt time.Time
}

// RequestVerificationCodeUseCase issues a fresh verification code and
// dispatches its delivery in the background. The code never appears in
// the result.
type RequestVerificationCodeUseCase struct {
	mobileRepo mobile.Repository
	sender     CodeSender
	dispatcher Dispatcher
	cooldown   time.Duration
	logger     logger.Interface
}

func NewRequestVerificationCodeUseCase(
	mobileRepo mobile.Repository,
	sender CodeSender,
	dispatcher Dispatcher,
	cooldown time.Duration,
	logger logger.Interface,
) *RequestVerificationCodeUseCase {
	return &RequestVerificationCodeUseCase{
		mobileRepo: mobileRepo,
		sender:     sender,
		dispatcher: dispatcher,
		cooldown:   cooldown,
		logger:     logger,
	}
}

func (uc *RequestVerificationCodeUseCase) Execute(ctx context.Context, cmd RequestVerificationCodeCommand) (*RequestVerificationCodeResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	m, err := uc.mobileRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("mobile number not found")
	}

	code, err := m.GenerateVerificationCode(time.Now(), uc.cooldown)
	if err != nil {
		if mobile.IsCooldownError(err) {
			return nil, errors.NewValidationError(err.Error())
		}
		return nil, err
	}

	if err := uc.mobileRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to persist verification code", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	number := m.Number()
	uc.dispatcher.Submit("send_verification_code", func(taskCtx context.Context) error {
		return uc.sender.SendCode(taskCtx, number, code)
	})

	uc.logger.Infow("verification code issued", "user_id", cmd.UserID, "expires_at", m.CodeExpiresAt())

	return &RequestVerificationCodeResult{ExpiresAt: *m.CodeExpiresAt()}, nil
}
