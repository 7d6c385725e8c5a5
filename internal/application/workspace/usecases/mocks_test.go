package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/workspace"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type mockWorkspaceRepository struct {
	SaveFunc             func(ctx context.Context, w *workspace.WorkSpace) error
	UpdateFunc           func(ctx context.Context, w *workspace.WorkSpace) error
	FindByIDFunc         func(ctx context.Context, id uint) (*workspace.WorkSpace, error)
	FindByNameFunc       func(ctx context.Context, name string) (*workspace.WorkSpace, error)
	ListFunc             func(ctx context.Context, limit, offset int) ([]*workspace.WorkSpace, int64, error)
	DeleteFunc           func(ctx context.Context, id uint) error
	SaveLocationFunc     func(ctx context.Context, l *workspace.Location) error
	UpdateLocationFunc   func(ctx context.Context, l *workspace.Location) error
	FindLocationByIDFunc func(ctx context.Context, id uint) (*workspace.Location, error)
}

func (m *mockWorkspaceRepository) Save(ctx context.Context, w *workspace.WorkSpace) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkspaceRepository) Update(ctx context.Context, w *workspace.WorkSpace) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkspaceRepository) FindByID(ctx context.Context, id uint) (*workspace.WorkSpace, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkspaceRepository) FindByName(ctx context.Context, name string) (*workspace.WorkSpace, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockWorkspaceRepository) List(ctx context.Context, limit, offset int) ([]*workspace.WorkSpace, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockWorkspaceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockWorkspaceRepository) SaveLocation(ctx context.Context, l *workspace.Location) error {
	if m.SaveLocationFunc != nil {
		return m.SaveLocationFunc(ctx, l)
	}
	return nil
}

func (m *mockWorkspaceRepository) UpdateLocation(ctx context.Context, l *workspace.Location) error {
	if m.UpdateLocationFunc != nil {
		return m.UpdateLocationFunc(ctx, l)
	}
	return nil
}

func (m *mockWorkspaceRepository) FindLocationByID(ctx context.Context, id uint) (*workspace.Location, error) {
	if m.FindLocationByIDFunc != nil {
		return m.FindLocationByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockGeocoder struct {
	ReverseGeocodeFunc func(ctx context.Context, latitude, longitude float64) (workspace.Address, error)
}

func (m *mockGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (workspace.Address, error) {
	if m.ReverseGeocodeFunc != nil {
		return m.ReverseGeocodeFunc(ctx, latitude, longitude)
	}
	return workspace.Address{}, nil
}

type mockGeocodeExecutor struct {
	Executed []uint
}

func (m *mockGeocodeExecutor) Execute(ctx context.Context, cmd GeocodeLocationCommand) error {
	m.Executed = append(m.Executed, cmd.LocationID)
	return nil
}

type syncDispatcher struct {
	Names []string
}

func (d *syncDispatcher) Submit(name string, fn func(ctx context.Context) error) {
	d.Names = append(d.Names, name)
	_ = fn(context.Background())
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
