package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksight/worksight-backend-go/internal/domain/department"
	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/domain/shift"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
)

type fakeLocationRepo struct {
	locations map[string]*location.Location
	deleteErr error
	deleted   []string
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: map[string]*location.Location{}}
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id string) (*location.Location, error) {
	loc, ok := f.locations[id]
	if !ok {
		return nil, location.ErrLocationNotFound
	}
	out := *loc
	return &out, nil
}

func (f *fakeLocationRepo) GetByName(_ context.Context, _ string) (*location.Location, error) {
	return nil, location.ErrLocationNotFound
}

func (f *fakeLocationRepo) Create(_ context.Context, loc *location.Location) error {
	f.locations[loc.ID] = loc
	return nil
}

func (f *fakeLocationRepo) Update(_ context.Context, loc *location.Location) error {
	f.locations[loc.ID] = loc
	return nil
}

func (f *fakeLocationRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.locations, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeLocationRepo) List(_ context.Context) ([]*location.Location, error) {
	out := make([]*location.Location, 0, len(f.locations))
	for _, loc := range f.locations {
		out = append(out, loc)
	}
	return out, nil
}

type stubDepartmentRepo struct{}

func (stubDepartmentRepo) GetByID(_ context.Context, _ string) (*department.Department, error) {
	return nil, department.ErrDepartmentNotFound
}

func (stubDepartmentRepo) GetByName(_ context.Context, _ string) (*department.Department, error) {
	return nil, department.ErrDepartmentNotFound
}

func (stubDepartmentRepo) Create(_ context.Context, _ *department.Department) error { return nil }
func (stubDepartmentRepo) Update(_ context.Context, _ *department.Department) error { return nil }
func (stubDepartmentRepo) Delete(_ context.Context, _ string) error                 { return nil }

func (stubDepartmentRepo) List(_ context.Context) ([]*department.Department, error) {
	return nil, nil
}

type stubShiftRepo struct{}

func (stubShiftRepo) GetByID(_ context.Context, _ string) (*shift.Config, error) {
	return nil, shift.ErrShiftNotFound
}

func (stubShiftRepo) GetByLocation(_ context.Context, _ string) (*shift.Config, error) {
	return nil, shift.ErrShiftNotFound
}

func (stubShiftRepo) Create(_ context.Context, _ *shift.Config) error { return nil }
func (stubShiftRepo) Update(_ context.Context, _ *shift.Config) error { return nil }
func (stubShiftRepo) Delete(_ context.Context, _ string) error        { return nil }

func (stubShiftRepo) List(_ context.Context) ([]*shift.Config, error) { return nil, nil }

func adminPrincipal() *user.Principal {
	return &user.Principal{UserID: "admin-1", Role: user.RoleAdmin}
}

func lat(v float64) *float64 { return &v }

func TestCreateLocation_StartsActive(t *testing.T) {
	repo := newFakeLocationRepo()
	svc := NewService(repo, stubDepartmentRepo{}, stubShiftRepo{})

	resp, err := svc.Create(context.Background(), adminPrincipal(), &location.CreateLocationRequest{
		Name:      "HQ",
		Address:   "1 Main St",
		Latitude:  lat(-6.2),
		Longitude: lat(106.8),
	})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestDeleteLocation_Removes(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.locations["loc-1"] = &location.Location{ID: "loc-1", Name: "HQ", IsActive: true}
	svc := NewService(repo, stubDepartmentRepo{}, stubShiftRepo{})

	require.NoError(t, svc.Delete(context.Background(), adminPrincipal(), "loc-1"))
	assert.Equal(t, []string{"loc-1"}, repo.deleted)
}

func TestDeleteLocation_InUseDeactivatesInstead(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.locations["loc-1"] = &location.Location{ID: "loc-1", Name: "HQ", IsActive: true}
	repo.deleteErr = location.ErrLocationInUse
	svc := NewService(repo, stubDepartmentRepo{}, stubShiftRepo{})

	require.NoError(t, svc.Delete(context.Background(), adminPrincipal(), "loc-1"))
	assert.False(t, repo.locations["loc-1"].IsActive, "a referenced location is kept but deactivated")
}

func TestDeleteLocation_NonAdmin(t *testing.T) {
	repo := newFakeLocationRepo()
	svc := NewService(repo, stubDepartmentRepo{}, stubShiftRepo{})

	principal := &user.Principal{UserID: "sup-1", Role: user.RoleSupervisor}
	err := svc.Delete(context.Background(), principal, "loc-1")
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}
