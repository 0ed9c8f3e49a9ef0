package department

import (
	"context"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
)

type DepartmentService interface {
	Create(ctx context.Context, principal *user.Principal, req *CreateDepartmentRequest) (*DepartmentResponse, error)
	Get(ctx context.Context, id string) (*DepartmentResponse, error)
	Update(ctx context.Context, principal *user.Principal, id string, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	Delete(ctx context.Context, principal *user.Principal, id string) error
	List(ctx context.Context) ([]*DepartmentResponse, error)
}
