package mobile

import (
	"errors"
	"fmt"
	"time"
)

// ErrPreVerifiedCreation is returned when a mobile number is created with
// verification fields already set.
var ErrPreVerifiedCreation = errors.New("cannot create a mobile number with a pre-verified status")

// ErrIllicitVerificationChange is returned when verification fields were
// modified outside the verification transition.
var ErrIllicitVerificationChange = errors.New("verification status can only be changed through the verification process")

// CooldownError is returned when a verification code is requested before
// the cooldown window has elapsed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %d seconds before generating a new code", int(e.Remaining.Seconds()))
}

// IsCooldownError reports whether err is a CooldownError.
func IsCooldownError(err error) bool {
	var ce *CooldownError
	return errors.As(err, &ce)
}
