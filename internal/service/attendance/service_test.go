package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksight/worksight-backend-go/internal/domain/attendance"
	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/domain/shift"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/pkg/clock"
)

type fakeAttendanceRepo struct {
	records    map[string]*attendance.Record
	createErr  error
	updateErr  error
	lastFilter *attendance.ListFilter
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Record)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	rec, ok := f.records[recordKey(employeeID, date)]
	if !ok {
		return nil, attendance.ErrRecordNotFound
	}
	// Hand out a copy the way a row scan would, so callers mutating the
	// result do not reach into the store.
	out := *rec
	return &out, nil
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec *attendance.Record) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := recordKey(rec.EmployeeID, rec.Date)
	if _, exists := f.records[key]; exists {
		return attendance.ErrDuplicateRecord
	}
	f.records[key] = rec
	return nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, rec *attendance.Record, expected attendance.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	key := recordKey(rec.EmployeeID, rec.Date)
	stored, exists := f.records[key]
	if !exists || stored.Status != expected {
		return attendance.ErrStatusConflict
	}
	f.records[key] = rec
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter *attendance.ListFilter) ([]*attendance.Record, int, error) {
	f.lastFilter = filter
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, _, _ time.Time) ([]*attendance.Record, error) {
	var out []*attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) BackfillNotMarked(_ context.Context, employees []attendance.BackfillEmployee, date time.Time) (int, error) {
	inserted := 0
	for _, emp := range employees {
		key := recordKey(emp.EmployeeID, date)
		if _, exists := f.records[key]; exists {
			continue
		}
		f.records[key] = &attendance.Record{
			EmployeeID: emp.EmployeeID,
			LocationID: emp.LocationID,
			Date:       date,
			Status:     attendance.StatusNotMarked,
		}
		inserted++
	}
	return inserted, nil
}

func (f *fakeAttendanceRepo) SweepAbsent(_ context.Context, date time.Time) (int, error) {
	swept := 0
	for _, rec := range f.records {
		if rec.Date.Equal(date) && rec.Status == attendance.StatusNotMarked {
			rec.Status = attendance.StatusAbsent
			swept++
		}
	}
	return swept, nil
}

func (f *fakeAttendanceRepo) CountByStatus(_ context.Context, _ time.Time, _ *string) (map[attendance.Status]int, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, _ *user.User) error { return nil }

func (f *fakeUserRepo) Update(_ context.Context, _ string, _ *user.UpdateUserRequest) error {
	return nil
}

func (f *fakeUserRepo) Deactivate(_ context.Context, _ string) error { return nil }

func (f *fakeUserRepo) List(_ context.Context, _ *user.UserFilter) ([]*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListActiveEmployees(_ context.Context, _ *string) ([]*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListBySupervisor(_ context.Context, _ string) ([]*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountActiveEmployees(_ context.Context, _, _ *string) (int, error) {
	return 0, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, _ user.Role, _ *string) (int, error) {
	return 0, nil
}

type fakeLocationRepo struct {
	locations map[string]*location.Location
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id string) (*location.Location, error) {
	loc, ok := f.locations[id]
	if !ok {
		return nil, location.ErrLocationNotFound
	}
	return loc, nil
}

func (f *fakeLocationRepo) GetByName(_ context.Context, _ string) (*location.Location, error) {
	return nil, location.ErrLocationNotFound
}

func (f *fakeLocationRepo) Create(_ context.Context, _ *location.Location) error { return nil }
func (f *fakeLocationRepo) Update(_ context.Context, _ *location.Location) error { return nil }
func (f *fakeLocationRepo) Delete(_ context.Context, _ string) error             { return nil }

func (f *fakeLocationRepo) List(_ context.Context) ([]*location.Location, error) {
	var out []*location.Location
	for _, loc := range f.locations {
		out = append(out, loc)
	}
	return out, nil
}

type fakeShiftRepo struct {
	configs map[string]*shift.Config
}

func (f *fakeShiftRepo) GetByID(_ context.Context, _ string) (*shift.Config, error) {
	return nil, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) GetByLocation(_ context.Context, locationID string) (*shift.Config, error) {
	cfg, ok := f.configs[locationID]
	if !ok {
		return nil, shift.ErrShiftNotFound
	}
	return cfg, nil
}

func (f *fakeShiftRepo) Create(_ context.Context, _ *shift.Config) error { return nil }
func (f *fakeShiftRepo) Update(_ context.Context, _ *shift.Config) error { return nil }
func (f *fakeShiftRepo) Delete(_ context.Context, _ string) error        { return nil }

func (f *fakeShiftRepo) List(_ context.Context) ([]*shift.Config, error) { return nil, nil }

const (
	testEmployeeID = "2f06a3a9-5b5c-4c1e-9f3a-1d2e3f4a5b6c"
	testLocationID = "7c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f"
)

var (
	officeLat = 40.7128
	officeLon = -74.0060
)

type fixture struct {
	attendanceRepo *fakeAttendanceRepo
	userRepo       *fakeUserRepo
	locationRepo   *fakeLocationRepo
	shiftRepo      *fakeShiftRepo
	clock          *clock.Fixed
	svc            attendance.AttendanceService
}

// newFixture wires the service against an employee assigned to an office
// with a 150 m geofence and a 09:00 shift, at 08:55 local time.
func newFixture() *fixture {
	locID := testLocationID

	attendanceRepo := newFakeAttendanceRepo()
	userRepo := &fakeUserRepo{users: map[string]*user.User{
		testEmployeeID: {
			ID:         testEmployeeID,
			Name:       "Jordan Price",
			Role:       user.RoleEmployee,
			LocationID: &locID,
			Status:     user.StatusActive,
		},
	}}
	locationRepo := &fakeLocationRepo{locations: map[string]*location.Location{
		testLocationID: {
			ID:                  testLocationID,
			Name:                "HQ",
			Latitude:            &officeLat,
			Longitude:           &officeLon,
			AllowedRadiusMeters: 150,
		},
	}}
	shiftRepo := &fakeShiftRepo{configs: map[string]*shift.Config{
		testLocationID: {LocationID: testLocationID, StartTime: "09:00:00", EndTime: "17:00:00", GraceMinutes: 15},
	}}
	clk := &clock.Fixed{Instant: time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC)}

	return &fixture{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		locationRepo:   locationRepo,
		shiftRepo:      shiftRepo,
		clock:          clk,
		svc:            NewService(attendanceRepo, userRepo, locationRepo, shiftRepo, clk),
	}
}

func (f *fixture) principal() *user.Principal {
	locID := testLocationID
	return &user.Principal{UserID: testEmployeeID, Role: user.RoleEmployee, LocationID: &locID}
}

func (f *fixture) seedRecord(status attendance.Status) *attendance.Record {
	rec := &attendance.Record{
		ID:         "seeded",
		EmployeeID: testEmployeeID,
		LocationID: testLocationID,
		Date:       f.clock.Today(),
		Status:     status,
	}
	if status == attendance.StatusPresent || status == attendance.StatusCheckedOut {
		at := f.clock.Now()
		rec.CheckInTime = &at
	}
	f.attendanceRepo.records[recordKey(testEmployeeID, rec.Date)] = rec
	return rec
}

func atOffice() *attendance.CheckInRequest {
	return &attendance.CheckInRequest{Latitude: officeLat, Longitude: officeLon}
}

func TestCheckIn_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
	require.NoError(t, err)

	assert.Equal(t, "Checked in successfully", resp.Message)
	assert.Equal(t, string(attendance.StatusPresent), resp.Record.Status)
	assert.False(t, resp.Record.IsLate)
	assert.Equal(t, 0, resp.Record.LateMinutes)
	assert.InDelta(t, 0.0, resp.DistanceMeters, 1.0)

	stored, err := f.attendanceRepo.GetByEmployeeAndDate(context.Background(), testEmployeeID, f.clock.Today())
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, stored.Status)
	assert.Equal(t, testLocationID, stored.LocationID)
	require.NotNil(t, stored.CheckInTime)
	assert.Equal(t, f.clock.Now(), *stored.CheckInTime)
}

func TestCheckIn_Late(t *testing.T) {
	f := newFixture()
	f.clock.Instant = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	resp, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
	require.NoError(t, err)

	assert.Equal(t, "Checked in late by 30 minutes", resp.Message)
	assert.True(t, resp.Record.IsLate)
	assert.Equal(t, 30, resp.Record.LateMinutes)
}

func TestCheckIn_AlreadyCheckedIn(t *testing.T) {
	for _, status := range []attendance.Status{attendance.StatusPresent, attendance.StatusCheckedOut} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture()
			f.seedRecord(status)

			_, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
			assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		})
	}
}

func TestCheckIn_MarkedAbsent(t *testing.T) {
	f := newFixture()
	f.seedRecord(attendance.StatusAbsent)

	_, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
	assert.ErrorIs(t, err, attendance.ErrMarkedAbsent)
}

func TestCheckIn_PromotesBackfilledRecord(t *testing.T) {
	f := newFixture()
	seeded := f.seedRecord(attendance.StatusNotMarked)

	resp, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
	require.NoError(t, err)

	// The placeholder row is promoted in place, not replaced.
	assert.Equal(t, seeded.ID, resp.Record.ID)
	assert.Equal(t, string(attendance.StatusPresent), resp.Record.Status)
	assert.Len(t, f.attendanceRepo.records, 1)
}

func TestCheckIn_OutOfRange(t *testing.T) {
	f := newFixture()

	// Roughly 1.1 km north of the office.
	req := &attendance.CheckInRequest{Latitude: officeLat + 0.01, Longitude: officeLon}
	_, err := f.svc.CheckIn(context.Background(), f.principal(), req)

	var outOfRange *attendance.OutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 150, outOfRange.AllowedMeters)
	assert.Greater(t, outOfRange.DistanceMeters, 1000.0)

	assert.Empty(t, f.attendanceRepo.records, "rejected check-in must not write a record")
}

func TestCheckIn_NoGeofenceAcceptsAnyPosition(t *testing.T) {
	f := newFixture()
	f.locationRepo.locations[testLocationID].Latitude = nil
	f.locationRepo.locations[testLocationID].Longitude = nil

	resp, err := f.svc.CheckIn(context.Background(), f.principal(), &attendance.CheckInRequest{Latitude: 51.5, Longitude: -0.12})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.DistanceMeters)
}

func TestCheckIn_NoLocationAssigned(t *testing.T) {
	f := newFixture()
	f.userRepo.users[testEmployeeID].LocationID = nil

	_, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
	assert.ErrorIs(t, err, attendance.ErrNotLocationAssigned)
}

func TestCheckIn_AssignedLocationMissing(t *testing.T) {
	f := newFixture()
	delete(f.locationRepo.locations, testLocationID)

	_, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
	assert.ErrorIs(t, err, attendance.ErrLocationNotFound)
}

func TestCheckIn_AdminRejected(t *testing.T) {
	f := newFixture()
	principal := &user.Principal{UserID: testEmployeeID, Role: user.RoleAdmin}

	_, err := f.svc.CheckIn(context.Background(), principal, atOffice())
	assert.ErrorIs(t, err, attendance.ErrCheckInNotAllowed)
}

func TestCheckIn_InvalidCoordinates(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CheckIn(context.Background(), f.principal(), &attendance.CheckInRequest{Latitude: 95, Longitude: 0})
	assert.Error(t, err)
	assert.Empty(t, f.attendanceRepo.records)
}

func TestCheckIn_InsertRaceMapsToAlreadyCheckedIn(t *testing.T) {
	f := newFixture()
	f.attendanceRepo.createErr = attendance.ErrDuplicateRecord

	_, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_PromoteRaceMapsToAlreadyCheckedIn(t *testing.T) {
	f := newFixture()
	f.seedRecord(attendance.StatusNotMarked)
	f.attendanceRepo.updateErr = attendance.ErrStatusConflict

	_, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_NoShiftConfiguredIsNeverLate(t *testing.T) {
	f := newFixture()
	delete(f.shiftRepo.configs, testLocationID)
	f.clock.Instant = time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

	resp, err := f.svc.CheckIn(context.Background(), f.principal(), atOffice())
	require.NoError(t, err)
	assert.False(t, resp.Record.IsLate)
	assert.Equal(t, "Checked in successfully", resp.Message)
}

func TestCheckOut_Success(t *testing.T) {
	f := newFixture()
	f.seedRecord(attendance.StatusPresent)
	f.clock.Instant = time.Date(2026, 3, 2, 17, 5, 0, 0, time.UTC)

	resp, err := f.svc.CheckOut(context.Background(), f.principal())
	require.NoError(t, err)

	assert.Equal(t, "Checked out successfully", resp.Message)
	assert.Equal(t, string(attendance.StatusCheckedOut), resp.Record.Status)
	require.NotNil(t, resp.Record.CheckOutTime)
}

func TestCheckOut_NotCheckedIn(t *testing.T) {
	tests := []struct {
		name string
		seed *attendance.Status
	}{
		{"no record", nil},
		{"not marked", statusPtr(attendance.StatusNotMarked)},
		{"absent", statusPtr(attendance.StatusAbsent)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.seed != nil {
				f.seedRecord(*tt.seed)
			}

			_, err := f.svc.CheckOut(context.Background(), f.principal())
			assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
		})
	}
}

func TestCheckOut_AlreadyCheckedOut(t *testing.T) {
	f := newFixture()
	f.seedRecord(attendance.StatusCheckedOut)

	_, err := f.svc.CheckOut(context.Background(), f.principal())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOut_RaceMapsToAlreadyCheckedOut(t *testing.T) {
	f := newFixture()
	f.seedRecord(attendance.StatusPresent)
	f.attendanceRepo.updateErr = attendance.ErrStatusConflict

	_, err := f.svc.CheckOut(context.Background(), f.principal())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestListAll_SupervisorScopedToOwnLocation(t *testing.T) {
	f := newFixture()
	supervisorLoc := "supervisor-location-id"
	otherLoc := "other-location-id"
	principal := &user.Principal{UserID: "sup-1", Role: user.RoleSupervisor, LocationID: &supervisorLoc}

	_, err := f.svc.ListAll(context.Background(), principal, &attendance.ListFilter{LocationID: &otherLoc})
	require.NoError(t, err)

	require.NotNil(t, f.attendanceRepo.lastFilter)
	require.NotNil(t, f.attendanceRepo.lastFilter.LocationID)
	assert.Equal(t, supervisorLoc, *f.attendanceRepo.lastFilter.LocationID)
}

func TestListAll_AdminUnscoped(t *testing.T) {
	f := newFixture()
	principal := &user.Principal{UserID: "admin-1", Role: user.RoleAdmin}

	_, err := f.svc.ListAll(context.Background(), principal, nil)
	require.NoError(t, err)
	assert.Nil(t, f.attendanceRepo.lastFilter.LocationID)
	assert.Equal(t, 1, f.attendanceRepo.lastFilter.Page)
	assert.Equal(t, 20, f.attendanceRepo.lastFilter.PageSize)
}

func TestToday_NoRecord(t *testing.T) {
	f := newFixture()

	rec, err := f.svc.Today(context.Background(), f.principal())
	require.NoError(t, err)
	assert.Nil(t, rec, "a day without a record is null, not an error")
}

func statusPtr(s attendance.Status) *attendance.Status { return &s }
