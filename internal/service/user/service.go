package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/worksight/worksight-backend-go/internal/domain/department"
	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
)

type Service struct {
	userRepo       user.UserRepository
	locationRepo   location.LocationRepository
	departmentRepo department.DepartmentRepository
}

func NewService(
	userRepo user.UserRepository,
	locationRepo location.LocationRepository,
	departmentRepo department.DepartmentRepository,
) user.UserService {
	return &Service{
		userRepo:       userRepo,
		locationRepo:   locationRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *Service) Create(ctx context.Context, principal *user.Principal, req *user.CreateUserRequest) (*user.UserResponse, error) {
	if principal.Role != user.RoleAdmin {
		return nil, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.LocationID, req.DepartmentID, req.SupervisorID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		LocationID:   req.LocationID,
		DepartmentID: req.DepartmentID,
		SupervisorID: req.SupervisorID,
		Status:       user.StatusActive,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return user.ToUserResponse(u), nil
}

func (s *Service) Get(ctx context.Context, principal *user.Principal, id string) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if scoped := principal.ScopedLocationID(); scoped != nil {
		if u.LocationID == nil || *u.LocationID != *scoped {
			return nil, user.ErrUserNotFound
		}
	}

	return user.ToUserResponse(u), nil
}

func (s *Service) Update(ctx context.Context, principal *user.Principal, id string, req *user.UpdateUserRequest) (*user.UserResponse, error) {
	if principal.Role != user.RoleAdmin {
		return nil, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.LocationID, req.DepartmentID, req.SupervisorID); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, id, req); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user.ToUserResponse(u), nil
}

func (s *Service) Deactivate(ctx context.Context, principal *user.Principal, id string) error {
	if principal.Role != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	if principal.UserID == id {
		return user.ErrCannotDeactivateSelf
	}

	return s.userRepo.Deactivate(ctx, id)
}

func (s *Service) List(ctx context.Context, principal *user.Principal, filter *user.UserFilter) ([]*user.UserResponse, error) {
	if filter == nil {
		filter = &user.UserFilter{}
	}
	if scoped := principal.ScopedLocationID(); scoped != nil {
		filter.LocationID = scoped
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toResponses(users), nil
}

func (s *Service) ListSupervisors(ctx context.Context, principal *user.Principal) ([]*user.UserResponse, error) {
	role := string(user.RoleSupervisor)
	status := string(user.StatusActive)

	return s.List(ctx, principal, &user.UserFilter{Role: &role, Status: &status})
}

func (s *Service) ListEmployees(ctx context.Context, principal *user.Principal) ([]*user.UserResponse, error) {
	users, err := s.userRepo.ListActiveEmployees(ctx, principal.ScopedLocationID())
	if err != nil {
		return nil, err
	}

	return toResponses(users), nil
}

func (s *Service) ListTeam(ctx context.Context, principal *user.Principal, supervisorID string) ([]*user.UserResponse, error) {
	if principal.Role != user.RoleAdmin && principal.UserID != supervisorID {
		return nil, user.ErrAdminPrivilegeRequired
	}

	sup, err := s.userRepo.GetByID(ctx, supervisorID)
	if err != nil {
		return nil, err
	}
	if sup.Role != user.RoleSupervisor {
		return nil, user.ErrSupervisorNotFound
	}

	team, err := s.userRepo.ListBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, err
	}

	return toResponses(team), nil
}

func (s *Service) checkReferences(ctx context.Context, locationID, departmentID, supervisorID *string) error {
	if locationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *locationID); err != nil {
			return err
		}
	}
	if departmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *departmentID); err != nil {
			return err
		}
	}
	if supervisorID != nil {
		sup, err := s.userRepo.GetByID(ctx, *supervisorID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.ErrSupervisorNotFound
			}
			return err
		}
		if sup.Role != user.RoleSupervisor {
			return user.ErrSupervisorNotFound
		}
	}

	return nil
}

func toResponses(users []*user.User) []*user.UserResponse {
	responses := make([]*user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToUserResponse(u))
	}
	return responses
}
