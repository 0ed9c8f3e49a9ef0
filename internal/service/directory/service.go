// Package directory manages the reference data the attendance flows read:
// work locations, departments and per-location shift configurations.
package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/worksight/worksight-backend-go/internal/domain/department"
	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/domain/shift"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
)

type Service struct {
	locationRepo   location.LocationRepository
	departmentRepo department.DepartmentRepository
	shiftRepo      shift.ShiftRepository
}

func NewService(
	locationRepo location.LocationRepository,
	departmentRepo department.DepartmentRepository,
	shiftRepo shift.ShiftRepository,
) *Service {
	return &Service{
		locationRepo:   locationRepo,
		departmentRepo: departmentRepo,
		shiftRepo:      shiftRepo,
	}
}

func requireAdmin(principal *user.Principal) error {
	if principal.Role != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	return nil
}

func (s *Service) Create(ctx context.Context, principal *user.Principal, req *location.CreateLocationRequest) (*location.LocationResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	radius := location.DefaultAllowedRadiusMeters
	if req.AllowedRadiusMeters != nil {
		radius = *req.AllowedRadiusMeters
	}

	loc := &location.Location{
		ID:                  uuid.NewString(),
		Name:                req.Name,
		Address:             req.Address,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		AllowedRadiusMeters: radius,
		IsActive:            true,
	}

	if err := s.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}

	return location.ToLocationResponse(loc), nil
}

func (s *Service) Get(ctx context.Context, id string) (*location.LocationResponse, error) {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return location.ToLocationResponse(loc), nil
}

func (s *Service) Update(ctx context.Context, principal *user.Principal, id string, req *location.UpdateLocationRequest) (*location.LocationResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Address != nil {
		loc.Address = *req.Address
	}
	if req.Latitude != nil {
		loc.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		loc.Longitude = req.Longitude
	}
	if req.AllowedRadiusMeters != nil {
		loc.AllowedRadiusMeters = *req.AllowedRadiusMeters
	}
	if req.IsActive != nil {
		loc.IsActive = *req.IsActive
	}

	if err := s.locationRepo.Update(ctx, loc); err != nil {
		return nil, err
	}

	return location.ToLocationResponse(loc), nil
}

func (s *Service) Delete(ctx context.Context, principal *user.Principal, id string) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	err := s.locationRepo.Delete(ctx, id)
	if errors.Is(err, location.ErrLocationInUse) {
		// A location still referenced by users or records is deactivated
		// instead of removed.
		loc, getErr := s.locationRepo.GetByID(ctx, id)
		if getErr != nil {
			return getErr
		}
		loc.IsActive = false
		return s.locationRepo.Update(ctx, loc)
	}
	return err
}

func (s *Service) List(ctx context.Context) ([]*location.LocationResponse, error) {
	locs, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*location.LocationResponse, 0, len(locs))
	for _, loc := range locs {
		responses = append(responses, location.ToLocationResponse(loc))
	}

	return responses, nil
}

// Departments delegates department reference data operations.
type Departments struct {
	svc *Service
}

func (s *Service) Departments() *Departments {
	return &Departments{svc: s}
}

func (d *Departments) Create(ctx context.Context, principal *user.Principal, req *department.CreateDepartmentRequest) (*department.DepartmentResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dept := &department.Department{
		ID:   uuid.NewString(),
		Name: req.Name,
	}

	if err := d.svc.departmentRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return department.ToDepartmentResponse(dept), nil
}

func (d *Departments) Get(ctx context.Context, id string) (*department.DepartmentResponse, error) {
	dept, err := d.svc.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return department.ToDepartmentResponse(dept), nil
}

func (d *Departments) Update(ctx context.Context, principal *user.Principal, id string, req *department.UpdateDepartmentRequest) (*department.DepartmentResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dept, err := d.svc.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dept.Name = req.Name
	if err := d.svc.departmentRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	return department.ToDepartmentResponse(dept), nil
}

func (d *Departments) Delete(ctx context.Context, principal *user.Principal, id string) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	return d.svc.departmentRepo.Delete(ctx, id)
}

func (d *Departments) List(ctx context.Context) ([]*department.DepartmentResponse, error) {
	depts, err := d.svc.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*department.DepartmentResponse, 0, len(depts))
	for _, dept := range depts {
		responses = append(responses, department.ToDepartmentResponse(dept))
	}

	return responses, nil
}

// Shifts delegates shift configuration operations.
type Shifts struct {
	svc *Service
}

func (s *Service) Shifts() *Shifts {
	return &Shifts{svc: s}
}

func (sh *Shifts) Upsert(ctx context.Context, principal *user.Principal, req *shift.CreateShiftRequest) (*shift.ShiftResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := sh.svc.locationRepo.GetByID(ctx, req.LocationID); err != nil {
		return nil, err
	}

	grace := shift.DefaultGraceMinutes
	if req.GraceMinutes != nil {
		grace = *req.GraceMinutes
	}

	existing, err := sh.svc.shiftRepo.GetByLocation(ctx, req.LocationID)
	if err != nil && !errors.Is(err, shift.ErrShiftNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.StartTime = req.StartTime
		existing.EndTime = req.EndTime
		existing.GraceMinutes = grace
		if err := sh.svc.shiftRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return shift.ToShiftResponse(existing), nil
	}

	cfg := &shift.Config{
		ID:           uuid.NewString(),
		LocationID:   req.LocationID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		GraceMinutes: grace,
	}
	if err := sh.svc.shiftRepo.Create(ctx, cfg); err != nil {
		return nil, err
	}

	return shift.ToShiftResponse(cfg), nil
}

func (sh *Shifts) GetByLocation(ctx context.Context, locationID string) (*shift.ShiftResponse, error) {
	cfg, err := sh.svc.shiftRepo.GetByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return shift.ToShiftResponse(cfg), nil
}

func (sh *Shifts) DeleteByLocation(ctx context.Context, principal *user.Principal, locationID string) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	cfg, err := sh.svc.shiftRepo.GetByLocation(ctx, locationID)
	if err != nil {
		return err
	}

	return sh.svc.shiftRepo.Delete(ctx, cfg.ID)
}

func (sh *Shifts) List(ctx context.Context) ([]*shift.ShiftResponse, error) {
	cfgs, err := sh.svc.shiftRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*shift.ShiftResponse, 0, len(cfgs))
	for _, cfg := range cfgs {
		responses = append(responses, shift.ToShiftResponse(cfg))
	}

	return responses, nil
}
