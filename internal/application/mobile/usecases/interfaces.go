package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/mobile/dto"
)

// CodeSender delivers a verification code to a phone number.
type CodeSender interface {
	SendCode(ctx context.Context, number, code string) error
}

// Dispatcher runs a named task in the background with retries. Callers
// never observe task failures.
type Dispatcher interface {
	Submit(name string, fn func(ctx context.Context) error)
}

type RegisterMobileNumberExecutor interface {
	Execute(ctx context.Context, cmd RegisterMobileNumberCommand) (*RegisterMobileNumberResult, error)
}

type RequestVerificationCodeExecutor interface {
	Execute(ctx context.Context, cmd RequestVerificationCodeCommand) (*RequestVerificationCodeResult, error)
}

type VerifyMobileCodeExecutor interface {
	Execute(ctx context.Context, cmd VerifyMobileCodeCommand) (*VerifyMobileCodeResult, error)
}

type UpdateMobileNumberExecutor interface {
	Execute(ctx context.Context, cmd UpdateMobileNumberCommand) (*UpdateMobileNumberResult, error)
}

type GetMobileNumberExecutor interface {
	Execute(ctx context.Context, query GetMobileNumberQuery) (*dto.MobileNumberDTO, error)
}
