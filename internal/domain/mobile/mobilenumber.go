package mobile

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	vo "github.com/rawad-inc/rawad/internal/domain/mobile/valueobjects"
)

// CodeTTL is how long a verification code stays valid after generation.
const CodeTTL = 10 * time.Minute

// MobileNumber is the aggregate for a user's phone number and its
// verification lifecycle. Exactly one mobile number exists per user;
// updating the number replaces it in place and resets verification.
//
// Verification fields (isVerified, status, verifiedAt) may only change
// through the transition methods on this type. Every persisted update runs
// through PrepareSave, which compares the in-memory state against the
// snapshot captured at load time and rejects any drift that did not come
// from a trusted transition.
type MobileNumber struct {
	id                  uint
	userID              uint
	number              string
	countryCode         string
	countryName         string
	countryISO          string
	carrierName         string
	numberType          string
	isVerified          bool
	status              vo.VerificationStatus
	verificationCode    string
	codeExpiresAt       *time.Time
	verifiedAt          *time.Time
	lastCodeGeneratedAt *time.Time
	createdAt           time.Time
	updatedAt           time.Time

	// trusted marks the pending save as originating from a verification
	// transition. Consumed by PrepareSave.
	trusted bool
	// original is the state captured at load time; nil for unsaved records.
	original *verificationSnapshot
}

type verificationSnapshot struct {
	number     string
	isVerified bool
	status     vo.VerificationStatus
	verifiedAt *time.Time
}

// NewMobileNumber creates a pending, unverified mobile number for a user.
// The raw number is normalized to E.164; metadata extraction failures are
// swallowed, but an invalid number fails creation.
func NewMobileNumber(userID uint, rawNumber string, parser PhoneParser) (*MobileNumber, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	e164, err := parser.Normalize(rawNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	m := &MobileNumber{
		userID:    userID,
		number:    e164,
		status:    vo.StatusPending,
		createdAt: now,
		updatedAt: now,
	}
	m.extractInfo(parser)
	return m, nil
}

// ReconstructMobileNumber reconstructs a mobile number from persistence
// and captures the snapshot used by the illicit-change guard.
func ReconstructMobileNumber(
	id uint,
	userID uint,
	number string,
	countryCode, countryName, countryISO, carrierName, numberType string,
	isVerified bool,
	status vo.VerificationStatus,
	verificationCode string,
	codeExpiresAt, verifiedAt, lastCodeGeneratedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*MobileNumber, error) {
	if id == 0 {
		return nil, fmt.Errorf("mobile number ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid verification status: %s", status)
	}

	m := &MobileNumber{
		id:                  id,
		userID:              userID,
		number:              number,
		countryCode:         countryCode,
		countryName:         countryName,
		countryISO:          countryISO,
		carrierName:         carrierName,
		numberType:          numberType,
		isVerified:          isVerified,
		status:              status,
		verificationCode:    verificationCode,
		codeExpiresAt:       codeExpiresAt,
		verifiedAt:          verifiedAt,
		lastCodeGeneratedAt: lastCodeGeneratedAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
	m.captureSnapshot()
	return m, nil
}

func (m *MobileNumber) ID() uint                        { return m.id }
func (m *MobileNumber) UserID() uint                    { return m.userID }
func (m *MobileNumber) Number() string                  { return m.number }
func (m *MobileNumber) CountryCode() string             { return m.countryCode }
func (m *MobileNumber) CountryName() string             { return m.countryName }
func (m *MobileNumber) CountryISO() string              { return m.countryISO }
func (m *MobileNumber) CarrierName() string             { return m.carrierName }
func (m *MobileNumber) NumberType() string              { return m.numberType }
func (m *MobileNumber) IsVerified() bool                { return m.isVerified }
func (m *MobileNumber) Status() vo.VerificationStatus   { return m.status }
func (m *MobileNumber) VerificationCode() string        { return m.verificationCode }
func (m *MobileNumber) CodeExpiresAt() *time.Time       { return m.codeExpiresAt }
func (m *MobileNumber) VerifiedAt() *time.Time          { return m.verifiedAt }
func (m *MobileNumber) LastCodeGeneratedAt() *time.Time { return m.lastCodeGeneratedAt }
func (m *MobileNumber) CreatedAt() time.Time            { return m.createdAt }
func (m *MobileNumber) UpdatedAt() time.Time            { return m.updatedAt }

// SetID assigns the database identity after the initial insert.
func (m *MobileNumber) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("mobile number ID already set")
	}
	if id == 0 {
		return fmt.Errorf("mobile number ID cannot be zero")
	}
	m.id = id
	return nil
}

// SetNumber replaces the raw number without resetting verification. The
// reset happens in PrepareSave when the change is detected, mirroring the
// update-through-any-write-path behavior. Invalid numbers are rejected.
func (m *MobileNumber) SetNumber(rawNumber string, parser PhoneParser) error {
	e164, err := parser.Normalize(rawNumber)
	if err != nil {
		return err
	}
	m.number = e164
	m.extractInfo(parser)
	return nil
}

// SetVerified writes the verified flag directly. Saves made after calling
// this outside a trusted transition are rejected by PrepareSave.
func (m *MobileNumber) SetVerified(verified bool) {
	m.isVerified = verified
}

// SetStatus writes the verification status directly. Saves made after
// calling this outside a trusted transition are rejected by PrepareSave.
func (m *MobileNumber) SetStatus(status vo.VerificationStatus) {
	m.status = status
}

// SetVerifiedAt writes the verified timestamp directly. Saves made after
// calling this outside a trusted transition are rejected by PrepareSave.
func (m *MobileNumber) SetVerifiedAt(t *time.Time) {
	m.verifiedAt = t
}

// GenerateVerificationCode issues a new 6-digit code. A second request
// within the cooldown window fails with a CooldownError naming the
// remaining wait. On success the code expires after CodeTTL, the status
// resets to pending and the generation timestamp is stamped.
func (m *MobileNumber) GenerateVerificationCode(now time.Time, cooldown time.Duration) (string, error) {
	if m.lastCodeGeneratedAt != nil {
		elapsed := now.Sub(*m.lastCodeGeneratedAt)
		if elapsed < cooldown {
			return "", &CooldownError{Remaining: cooldown - elapsed}
		}
	}

	code, err := randomCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	expires := now.Add(CodeTTL)
	generated := now
	m.verificationCode = code
	m.codeExpiresAt = &expires
	m.status = vo.StatusPending
	m.lastCodeGeneratedAt = &generated
	m.updatedAt = now
	m.trusted = true

	return code, nil
}

// VerifyCode checks the supplied code. It never returns an error: failures
// are reported as (false, reason). An expired code transitions the status
// to expired as a side effect; the caller persists that alone. A matching,
// unexpired code performs the trusted transition to verified and clears
// the code.
func (m *MobileNumber) VerifyCode(code string, now time.Time) (bool, string) {
	if m.verificationCode == "" {
		return false, "No verification code generated"
	}

	if m.IsCodeExpired(now) {
		m.status = vo.StatusExpired
		m.updatedAt = now
		m.trusted = true
		return false, "Verification code has expired"
	}

	if m.verificationCode != code {
		return false, "Invalid verification code"
	}

	verified := now
	m.isVerified = true
	m.status = vo.StatusVerified
	m.verifiedAt = &verified
	m.verificationCode = ""
	m.codeExpiresAt = nil
	m.updatedAt = now
	m.trusted = true

	return true, "Mobile number verified successfully"
}

// UpdateNumber replaces the phone number and resets verification.
func (m *MobileNumber) UpdateNumber(rawNumber string, parser PhoneParser) error {
	e164, err := parser.Normalize(rawNumber)
	if err != nil {
		return err
	}
	m.number = e164
	m.extractInfo(parser)
	m.resetVerification()
	m.updatedAt = time.Now()
	m.trusted = true
	return nil
}

// MarkCodeExpired transitions a pending record with a lapsed code to
// expired. Used by the background sweep; no-op when the code is still
// valid or absent.
func (m *MobileNumber) MarkCodeExpired(now time.Time) bool {
	if m.status != vo.StatusPending || !m.IsCodeExpired(now) {
		return false
	}
	m.status = vo.StatusExpired
	m.updatedAt = now
	m.trusted = true
	return true
}

// IsCodeExpired reports whether the current verification code is past its
// expiry. A record without an expiry is never expired.
func (m *MobileNumber) IsCodeExpired(now time.Time) bool {
	if m.codeExpiresAt == nil {
		return false
	}
	return now.After(*m.codeExpiresAt)
}

// PrepareSave validates the pending write and must be called by the
// repository before persisting.
//
// For a new record, the verification fields must be at their defaults: a
// record cannot be created already verified. For an existing record saved
// outside a trusted transition, a changed number forces a verification
// reset; an unchanged number with drifted verification fields rejects the
// save. The trusted flag is consumed either way.
func (m *MobileNumber) PrepareSave() error {
	isNew := m.original == nil

	if isNew {
		if m.isVerified || m.status != vo.StatusPending || m.verifiedAt != nil {
			return ErrPreVerifiedCreation
		}
		m.verificationCode = ""
		m.codeExpiresAt = nil
		return nil
	}

	if m.trusted {
		m.trusted = false
		return nil
	}

	if m.number != m.original.number {
		m.resetVerification()
		return nil
	}

	if m.isVerified != m.original.isVerified ||
		m.status != m.original.status ||
		!equalTimePtr(m.verifiedAt, m.original.verifiedAt) {
		return ErrIllicitVerificationChange
	}

	return nil
}

// MarkSaved refreshes the guard snapshot after a successful write so the
// same instance can be saved again.
func (m *MobileNumber) MarkSaved() {
	m.trusted = false
	m.captureSnapshot()
}

func (m *MobileNumber) resetVerification() {
	m.isVerified = false
	m.status = vo.StatusPending
	m.verificationCode = ""
	m.codeExpiresAt = nil
	m.verifiedAt = nil
}

func (m *MobileNumber) captureSnapshot() {
	m.original = &verificationSnapshot{
		number:     m.number,
		isVerified: m.isVerified,
		status:     m.status,
		verifiedAt: m.verifiedAt,
	}
}

// extractInfo derives country/carrier metadata from the normalized number.
// Extraction failures leave the fields blank rather than failing the save.
func (m *MobileNumber) extractInfo(parser PhoneParser) {
	info, ok := parser.Extract(m.number)
	if !ok {
		m.countryCode = ""
		m.countryName = ""
		m.countryISO = ""
		m.carrierName = ""
		m.numberType = ""
		return
	}
	m.countryCode = info.CountryCode
	m.countryName = info.CountryName
	m.countryISO = info.CountryISO
	m.carrierName = info.CarrierName
	m.numberType = info.NumberType
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// randomCode draws a uniformly random 6-digit code.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
