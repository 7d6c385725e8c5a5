package workspace

import "context"

// Repository defines the persistence contract for workspaces and locations.
type Repository interface {
	Save(ctx context.Context, w *WorkSpace) error
	Update(ctx context.Context, w *WorkSpace) error
	FindByID(ctx context.Context, id uint) (*WorkSpace, error)
	FindByName(ctx context.Context, name string) (*WorkSpace, error)
	List(ctx context.Context, limit, offset int) ([]*WorkSpace, int64, error)
	Delete(ctx context.Context, id uint) error

	SaveLocation(ctx context.Context, l *Location) error
	UpdateLocation(ctx context.Context, l *Location) error
	FindLocationByID(ctx context.Context, id uint) (*Location, error)
}
