package shift

import (
	"context"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
)

type ShiftService interface {
	// Upsert creates or replaces the shift configuration for a location.
	Upsert(ctx context.Context, principal *user.Principal, req *CreateShiftRequest) (*ShiftResponse, error)
	GetByLocation(ctx context.Context, locationID string) (*ShiftResponse, error)
	DeleteByLocation(ctx context.Context, principal *user.Principal, locationID string) error
	List(ctx context.Context) ([]*ShiftResponse, error)
}
