package usecases

import "context"

type RecordDonationExecutor interface {
	Execute(ctx context.Context, cmd RecordDonationCommand) (*RecordDonationResult, error)
}

type ListDonationsExecutor interface {
	Execute(ctx context.Context, query ListDonationsQuery) (*ListDonationsResult, error)
}
