package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawad-inc/rawad/internal/domain/workspace"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

func TestCreateWorkSpace_WithLocationDispatchesGeocode(t *testing.T) {
	repo := &mockWorkspaceRepository{
		SaveLocationFunc: func(ctx context.Context, l *workspace.Location) error {
			return l.SetID(7)
		},
		SaveFunc: func(ctx context.Context, w *workspace.WorkSpace) error {
			return w.SetID(3)
		},
	}
	geocode := &mockGeocodeExecutor{}
	dispatcher := &syncDispatcher{}

	lat, lon := 24.7136, 46.6753
	uc := NewCreateWorkSpaceUseCase(repo, geocode, dispatcher, noopLogger{})
	result, err := uc.Execute(context.Background(), CreateWorkSpaceCommand{
		Name:      "Downtown Hub",
		OwnerName: "Rami",
		Latitude:  &lat,
		Longitude: &lon,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), result.WorkSpaceID)
	require.NotNil(t, result.LocationID)
	assert.Equal(t, uint(7), *result.LocationID)
	assert.Equal(t, []string{"geocode_location"}, dispatcher.Names)
	assert.Equal(t, []uint{7}, geocode.Executed)
}

func TestCreateWorkSpace_WithoutLocation(t *testing.T) {
	repo := &mockWorkspaceRepository{
		SaveFunc: func(ctx context.Context, w *workspace.WorkSpace) error {
			return w.SetID(3)
		},
	}
	dispatcher := &syncDispatcher{}

	uc := NewCreateWorkSpaceUseCase(repo, &mockGeocodeExecutor{}, dispatcher, noopLogger{})
	result, err := uc.Execute(context.Background(), CreateWorkSpaceCommand{
		Name:      "Downtown Hub",
		OwnerName: "Rami",
	})
	require.NoError(t, err)

	assert.Nil(t, result.LocationID)
	assert.Empty(t, dispatcher.Names)
}

func TestCreateWorkSpace_DuplicateName(t *testing.T) {
	existing, err := workspace.NewWorkSpace("Downtown Hub", "Rami", "")
	require.NoError(t, err)

	repo := &mockWorkspaceRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*workspace.WorkSpace, error) {
			return existing, nil
		},
	}

	uc := NewCreateWorkSpaceUseCase(repo, &mockGeocodeExecutor{}, &syncDispatcher{}, noopLogger{})
	_, err = uc.Execute(context.Background(), CreateWorkSpaceCommand{
		Name:      "Downtown Hub",
		OwnerName: "Sara",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestGeocodeLocation(t *testing.T) {
	loc, err := workspace.NewLocation(24.7136, 46.6753)
	require.NoError(t, err)
	require.NoError(t, loc.SetID(7))

	var updated *workspace.Location
	repo := &mockWorkspaceRepository{
		FindLocationByIDFunc: func(ctx context.Context, id uint) (*workspace.Location, error) {
			return loc, nil
		},
		UpdateLocationFunc: func(ctx context.Context, l *workspace.Location) error {
			updated = l
			return nil
		},
	}
	geocoder := &mockGeocoder{
		ReverseGeocodeFunc: func(ctx context.Context, latitude, longitude float64) (workspace.Address, error) {
			return workspace.Address{City: "Riyadh", Country: "Saudi Arabia"}, nil
		},
	}

	uc := NewGeocodeLocationUseCase(repo, geocoder, noopLogger{})
	require.NoError(t, uc.Execute(context.Background(), GeocodeLocationCommand{LocationID: 7}))

	require.NotNil(t, updated)
	assert.Equal(t, "Riyadh", updated.Address().City)
	assert.Equal(t, "Saudi Arabia", updated.Address().Country)
}
