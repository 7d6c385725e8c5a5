package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/workspace/dto"
	"github.com/rawad-inc/rawad/internal/domain/workspace"
)

// Geocoder resolves coordinates into an address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (workspace.Address, error)
}

// Dispatcher runs a named task in the background with retries.
type Dispatcher interface {
	Submit(name string, fn func(ctx context.Context) error)
}

type CreateWorkSpaceExecutor interface {
	Execute(ctx context.Context, cmd CreateWorkSpaceCommand) (*CreateWorkSpaceResult, error)
}

type GetWorkSpaceExecutor interface {
	Execute(ctx context.Context, query GetWorkSpaceQuery) (*dto.WorkSpaceDTO, error)
}

type ListWorkSpacesExecutor interface {
	Execute(ctx context.Context, query ListWorkSpacesQuery) (*ListWorkSpacesResult, error)
}

type GeocodeLocationExecutor interface {
	Execute(ctx context.Context, cmd GeocodeLocationCommand) error
}
