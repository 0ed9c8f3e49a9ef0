package location

import (
	"context"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
)

type LocationService interface {
	Create(ctx context.Context, principal *user.Principal, req *CreateLocationRequest) (*LocationResponse, error)
	Get(ctx context.Context, id string) (*LocationResponse, error)
	Update(ctx context.Context, principal *user.Principal, id string, req *UpdateLocationRequest) (*LocationResponse, error)
	Delete(ctx context.Context, principal *user.Principal, id string) error
	List(ctx context.Context) ([]*LocationResponse, error)
}
