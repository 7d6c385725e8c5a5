package mobile

import (
	"context"
	"time"
)

// Repository defines the persistence contract for mobile numbers.
// Implementations must call PrepareSave before writing and MarkSaved after
// a successful write.
type Repository interface {
	Save(ctx context.Context, m *MobileNumber) error
	Update(ctx context.Context, m *MobileNumber) error
	FindByID(ctx context.Context, id uint) (*MobileNumber, error)
	FindByUserID(ctx context.Context, userID uint) (*MobileNumber, error)
	FindByNumber(ctx context.Context, number string) (*MobileNumber, error)

	// FindPendingWithCodeExpiredBefore returns pending records whose code
	// expiry is before the cutoff, for the background expiry sweep.
	FindPendingWithCodeExpiredBefore(ctx context.Context, cutoff time.Time, limit int) ([]*MobileNumber, error)
}
