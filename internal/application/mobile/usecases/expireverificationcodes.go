package usecases

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

// expiryBatchSize bounds how many records one sweep run processes.
const expiryBatchSize = 500

// ExpireVerificationCodesUseCase marks pending mobile numbers whose code
// lapsed without being verified. The status transition is best effort:
// VerifyCode performs the same transition inline, so a record missed here
// is corrected on the next verification attempt.
type ExpireVerificationCodesUseCase struct {
	mobileRepo mobile.Repository
	logger     logger.Interface
}

func NewExpireVerificationCodesUseCase(
	mobileRepo mobile.Repository,
	logger logger.Interface,
) *ExpireVerificationCodesUseCase {
	return &ExpireVerificationCodesUseCase{
		mobileRepo: mobileRepo,
		logger:     logger,
	}
}

// Execute sweeps one batch and returns how many records were expired.
func (uc *ExpireVerificationCodesUseCase) Execute(ctx context.Context) (int, error) {
	now := time.Now()

	numbers, err := uc.mobileRepo.FindPendingWithCodeExpiredBefore(ctx, now, expiryBatchSize)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, m := range numbers {
		if !m.MarkCodeExpired(now) {
			continue
		}
		if err := uc.mobileRepo.Update(ctx, m); err != nil {
			uc.logger.Warnw("failed to expire verification code",
				"mobile_number_id", m.ID(),
				"error", err,
			)
			continue
		}
		expired++
	}

	return expired, nil
}
