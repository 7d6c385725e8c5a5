package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

func TestRequestVerificationCode(t *testing.T) {
	m := pendingMobile(t)
	repo := &mockMobileRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*mobile.MobileNumber, error) {
			return m, nil
		},
	}
	sender := &mockCodeSender{}
	dispatcher := &syncDispatcher{}

	uc := NewRequestVerificationCodeUseCase(repo, sender, dispatcher, 60*time.Second, noopLogger{})
	result, err := uc.Execute(context.Background(), RequestVerificationCodeCommand{UserID: 7})
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(mobile.CodeTTL), result.ExpiresAt, 2*time.Second)
	assert.Equal(t, []string{"send_verification_code"}, dispatcher.Names)
	require.Len(t, sender.Sent, 1)
	assert.Len(t, sender.Sent[0], 6)
}

func TestRequestVerificationCode_Cooldown(t *testing.T) {
	m := pendingMobile(t)
	repo := &mockMobileRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*mobile.MobileNumber, error) {
			return m, nil
		},
	}
	uc := NewRequestVerificationCodeUseCase(repo, &mockCodeSender{}, &syncDispatcher{}, 60*time.Second, noopLogger{})

	_, err := uc.Execute(context.Background(), RequestVerificationCodeCommand{UserID: 7})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), RequestVerificationCodeCommand{UserID: 7})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "seconds before generating a new code")
}

func TestRegisterMobileNumber(t *testing.T) {
	repo := &mockMobileRepository{
		SaveFunc: func(ctx context.Context, n *mobile.MobileNumber) error {
			if err := n.PrepareSave(); err != nil {
				return err
			}
			if err := n.SetID(3); err != nil {
				return err
			}
			n.MarkSaved()
			return nil
		},
	}

	uc := NewRegisterMobileNumberUseCase(repo, stubParser{}, noopLogger{})
	result, err := uc.Execute(context.Background(), RegisterMobileNumberCommand{
		UserID: 7,
		Number: "+966 50 123 4567",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), result.MobileNumberID)
	assert.Equal(t, "+966501234567", result.Number)
	assert.Equal(t, "pending", result.Status)
}

func TestRegisterMobileNumber_AlreadyRegistered(t *testing.T) {
	existing := pendingMobile(t)
	repo := &mockMobileRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*mobile.MobileNumber, error) {
			return existing, nil
		},
	}

	uc := NewRegisterMobileNumberUseCase(repo, stubParser{}, noopLogger{})
	_, err := uc.Execute(context.Background(), RegisterMobileNumberCommand{
		UserID: 7,
		Number: "+966501234567",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestUpdateMobileNumber_TakenByAnotherUser(t *testing.T) {
	mine := pendingMobile(t)
	now := time.Now()
	other, err := mobile.ReconstructMobileNumber(
		2, 9, "+966559876543",
		"+966", "Saudi Arabia", "SA", "STC", "MOBILE",
		false, "pending",
		"", nil, nil, nil,
		now, now,
	)
	require.NoError(t, err)

	repo := &mockMobileRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*mobile.MobileNumber, error) {
			return mine, nil
		},
		FindByNumberFunc: func(ctx context.Context, number string) (*mobile.MobileNumber, error) {
			return other, nil
		},
	}

	uc := NewUpdateMobileNumberUseCase(repo, stubParser{}, noopLogger{})
	_, err = uc.Execute(context.Background(), UpdateMobileNumberCommand{
		UserID: 7,
		Number: "+966559876543",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}
