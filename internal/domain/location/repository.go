package location

import "context"

type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*Location, error)
	GetByName(ctx context.Context, name string) (*Location, error)
	Create(ctx context.Context, loc *Location) error
	Update(ctx context.Context, loc *Location) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Location, error)
}
