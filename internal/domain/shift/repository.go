package shift

import "context"

type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (*Config, error)
	// GetByLocation returns the shift configuration for a location, or
	// ErrShiftNotFound when the location has none.
	GetByLocation(ctx context.Context, locationID string) (*Config, error)
	Create(ctx context.Context, cfg *Config) error
	Update(ctx context.Context, cfg *Config) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Config, error)
}
