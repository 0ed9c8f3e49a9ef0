package department

import "context"

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	Create(ctx context.Context, dept *Department) error
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Department, error)
}
