package mobile

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/rawad-inc/rawad/internal/domain/mobile/valueobjects"
)

// fakeParser accepts any number starting with "+" and at least 8 digits.
type fakeParser struct {
	failExtract bool
}

func (p *fakeParser) Normalize(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, raw)
	if !strings.HasPrefix(cleaned, "+") || len(cleaned) < 9 {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}
	return cleaned, nil
}

func (p *fakeParser) Extract(e164 string) (PhoneInfo, bool) {
	if p.failExtract {
		return PhoneInfo{}, false
	}
	return PhoneInfo{
		CountryCode: "+966",
		CountryName: "Saudi Arabia",
		CountryISO:  "SA",
		CarrierName: "STC",
		NumberType:  "MOBILE",
	}, true
}

func newTestNumber(t *testing.T) *MobileNumber {
	t.Helper()
	m, err := NewMobileNumber(7, "+966 50 123 4567", &fakeParser{})
	require.NoError(t, err)
	return m
}

func reconstructPending(t *testing.T) *MobileNumber {
	t.Helper()
	now := time.Now()
	m, err := ReconstructMobileNumber(
		1, 7, "+966501234567",
		"+966", "Saudi Arabia", "SA", "STC", "MOBILE",
		false, vo.StatusPending,
		"", nil, nil, nil,
		now, now,
	)
	require.NoError(t, err)
	return m
}

func TestNewMobileNumber(t *testing.T) {
	m := newTestNumber(t)

	assert.Equal(t, "+966501234567", m.Number())
	assert.Equal(t, vo.StatusPending, m.Status())
	assert.False(t, m.IsVerified())
	assert.Nil(t, m.VerifiedAt())
	assert.Equal(t, "SA", m.CountryISO())
	assert.Equal(t, "STC", m.CarrierName())
}

func TestNewMobileNumber_InvalidNumber(t *testing.T) {
	_, err := NewMobileNumber(7, "not a number", &fakeParser{})
	assert.Error(t, err)
}

func TestNewMobileNumber_ExtractionFailureLeavesFieldsBlank(t *testing.T) {
	m, err := NewMobileNumber(7, "+966501234567", &fakeParser{failExtract: true})
	require.NoError(t, err)

	assert.Empty(t, m.CountryCode())
	assert.Empty(t, m.CountryISO())
	assert.Empty(t, m.CarrierName())
	assert.Empty(t, m.NumberType())
}

func TestPrepareSave_RejectsPreVerifiedCreation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *MobileNumber)
	}{
		{
			name:   "is_verified set",
			mutate: func(m *MobileNumber) { m.SetVerified(true) },
		},
		{
			name:   "status not pending",
			mutate: func(m *MobileNumber) { m.SetStatus(vo.StatusVerified) },
		},
		{
			name: "verified_at set",
			mutate: func(m *MobileNumber) {
				now := time.Now()
				m.SetVerifiedAt(&now)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestNumber(t)
			tt.mutate(m)
			err := m.PrepareSave()
			assert.ErrorIs(t, err, ErrPreVerifiedCreation)
		})
	}
}

func TestPrepareSave_CleanCreationAllowed(t *testing.T) {
	m := newTestNumber(t)
	assert.NoError(t, m.PrepareSave())
}

func TestGenerateVerificationCode(t *testing.T) {
	m := reconstructPending(t)
	now := time.Now()

	code, err := m.GenerateVerificationCode(now, 60*time.Second)
	require.NoError(t, err)

	assert.Len(t, code, 6)
	assert.Equal(t, code, m.VerificationCode())
	assert.Equal(t, vo.StatusPending, m.Status())
	require.NotNil(t, m.CodeExpiresAt())
	assert.WithinDuration(t, now.Add(CodeTTL), *m.CodeExpiresAt(), time.Second)
	require.NotNil(t, m.LastCodeGeneratedAt())
	assert.NoError(t, m.PrepareSave())
}

func TestGenerateVerificationCode_Cooldown(t *testing.T) {
	m := reconstructPending(t)
	now := time.Now()

	_, err := m.GenerateVerificationCode(now, 60*time.Second)
	require.NoError(t, err)

	_, err = m.GenerateVerificationCode(now.Add(10*time.Second), 60*time.Second)
	require.Error(t, err)
	assert.True(t, IsCooldownError(err))
	assert.Contains(t, err.Error(), "seconds before generating a new code")

	// After the cooldown elapses a new code is issued.
	_, err = m.GenerateVerificationCode(now.Add(61*time.Second), 60*time.Second)
	assert.NoError(t, err)
}

func TestVerifyCode_NoCodeGenerated(t *testing.T) {
	m := reconstructPending(t)

	ok, msg := m.VerifyCode("123456", time.Now())
	assert.False(t, ok)
	assert.Equal(t, "No verification code generated", msg)
}

func TestVerifyCode_Expired(t *testing.T) {
	m := reconstructPending(t)
	now := time.Now()

	code, err := m.GenerateVerificationCode(now, 0)
	require.NoError(t, err)
	m.MarkSaved()

	ok, msg := m.VerifyCode(code, now.Add(CodeTTL+time.Minute))
	assert.False(t, ok)
	assert.Equal(t, "Verification code has expired", msg)
	assert.Equal(t, vo.StatusExpired, m.Status())
	assert.False(t, m.IsVerified())

	// The expired transition is trusted, so persisting it passes the guard.
	assert.NoError(t, m.PrepareSave())
}

func TestVerifyCode_Mismatch(t *testing.T) {
	m := reconstructPending(t)
	now := time.Now()

	code, err := m.GenerateVerificationCode(now, 0)
	require.NoError(t, err)
	m.MarkSaved()

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	ok, msg := m.VerifyCode(wrong, now.Add(time.Minute))
	assert.False(t, ok)
	assert.Equal(t, "Invalid verification code", msg)
	assert.Equal(t, vo.StatusPending, m.Status())
}

func TestVerifyCode_Success(t *testing.T) {
	m := reconstructPending(t)
	now := time.Now()

	code, err := m.GenerateVerificationCode(now, 0)
	require.NoError(t, err)
	m.MarkSaved()

	ok, msg := m.VerifyCode(code, now.Add(time.Minute))
	assert.True(t, ok)
	assert.Equal(t, "Mobile number verified successfully", msg)
	assert.True(t, m.IsVerified())
	assert.Equal(t, vo.StatusVerified, m.Status())
	require.NotNil(t, m.VerifiedAt())
	assert.Empty(t, m.VerificationCode())
	assert.Nil(t, m.CodeExpiresAt())

	// The verification transition is trusted.
	require.NoError(t, m.PrepareSave())
	m.MarkSaved()

	// A later external write flipping the flag back is rejected.
	m.SetVerified(false)
	err = m.PrepareSave()
	assert.ErrorIs(t, err, ErrIllicitVerificationChange)
}

func TestPrepareSave_RejectsForgedVerification(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *MobileNumber)
	}{
		{
			name:   "forged is_verified",
			mutate: func(m *MobileNumber) { m.SetVerified(true) },
		},
		{
			name:   "forged status",
			mutate: func(m *MobileNumber) { m.SetStatus(vo.StatusVerified) },
		},
		{
			name: "forged verified_at",
			mutate: func(m *MobileNumber) {
				now := time.Now()
				m.SetVerifiedAt(&now)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := reconstructPending(t)
			tt.mutate(m)
			err := m.PrepareSave()
			assert.ErrorIs(t, err, ErrIllicitVerificationChange)
		})
	}
}

func TestPrepareSave_NumberChangeResetsVerification(t *testing.T) {
	now := time.Now()
	verifiedAt := now.Add(-time.Hour)
	m, err := ReconstructMobileNumber(
		1, 7, "+966501234567",
		"+966", "Saudi Arabia", "SA", "STC", "MOBILE",
		true, vo.StatusVerified,
		"", nil, &verifiedAt, nil,
		now.Add(-2*time.Hour), now,
	)
	require.NoError(t, err)

	// A plain write path changes the number without going through
	// UpdateNumber; the guard must still reset verification.
	require.NoError(t, m.SetNumber("+966 55 987 6543", &fakeParser{}))
	require.NoError(t, m.PrepareSave())

	assert.False(t, m.IsVerified())
	assert.Equal(t, vo.StatusPending, m.Status())
	assert.Nil(t, m.VerifiedAt())
	assert.Empty(t, m.VerificationCode())
}

func TestUpdateNumber_ResetsVerification(t *testing.T) {
	now := time.Now()
	verifiedAt := now.Add(-time.Hour)
	m, err := ReconstructMobileNumber(
		1, 7, "+966501234567",
		"+966", "Saudi Arabia", "SA", "STC", "MOBILE",
		true, vo.StatusVerified,
		"", nil, &verifiedAt, nil,
		now.Add(-2*time.Hour), now,
	)
	require.NoError(t, err)

	require.NoError(t, m.UpdateNumber("+966559876543", &fakeParser{}))

	assert.Equal(t, "+966559876543", m.Number())
	assert.False(t, m.IsVerified())
	assert.Equal(t, vo.StatusPending, m.Status())
	assert.Nil(t, m.VerifiedAt())
	assert.NoError(t, m.PrepareSave())
}

func TestUpdateNumber_InvalidNumberKeepsState(t *testing.T) {
	m := reconstructPending(t)

	err := m.UpdateNumber("garbage", &fakeParser{})
	require.Error(t, err)
	assert.Equal(t, "+966501234567", m.Number())
}

func TestPrepareSave_UnchangedRecordPasses(t *testing.T) {
	m := reconstructPending(t)
	assert.NoError(t, m.PrepareSave())
}

func TestRandomCodeRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := randomCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
