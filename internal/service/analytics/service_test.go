package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksight/worksight-backend-go/internal/domain/analytics"
	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/pkg/clock"
)

type fakeAnalyticsRepo struct {
	counts     *analytics.StatusCounts
	daily      []*analytics.DailyCounts
	latest     time.Time
	lateCounts []*analytics.EmployeeLateCounts
	byLocation []*analytics.GroupCounts
	byDept     []*analytics.GroupCounts

	countsDate     time.Time
	countsLoc      *string
	byLocationLoc  *string
	byLocationDate time.Time
}

func (f *fakeAnalyticsRepo) StatusCountsForDate(_ context.Context, date time.Time, locationID *string) (*analytics.StatusCounts, error) {
	f.countsDate = date
	f.countsLoc = locationID
	if f.counts == nil {
		return &analytics.StatusCounts{}, nil
	}
	return f.counts, nil
}

func (f *fakeAnalyticsRepo) DailyStatusCounts(_ context.Context, _ analytics.DateRange, _ *string) ([]*analytics.DailyCounts, error) {
	return f.daily, nil
}

func (f *fakeAnalyticsRepo) LatestDateWithActivity(_ context.Context) (time.Time, error) {
	return f.latest, nil
}

func (f *fakeAnalyticsRepo) LateCountsByEmployee(_ context.Context, _ analytics.DateRange, _ *string) ([]*analytics.EmployeeLateCounts, error) {
	return f.lateCounts, nil
}

func (f *fakeAnalyticsRepo) CountsByLocation(_ context.Context, date time.Time, locationID *string) ([]*analytics.GroupCounts, error) {
	f.byLocationDate = date
	f.byLocationLoc = locationID
	return f.byLocation, nil
}

func (f *fakeAnalyticsRepo) CountsByDepartment(_ context.Context, _ time.Time, _ *string) ([]*analytics.GroupCounts, error) {
	return f.byDept, nil
}

type fakeUserRepo struct {
	activeEmployees int
	supervisors     int
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrUserNotFound
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
	return f.activeEmployees, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, _ user.Role, _ *string) (int, error) {
	return f.supervisors, nil
}

type fakeLocationRepo struct {
	locations []*location.Location
}

func (f *fakeLocationRepo) GetByID(_ context.Context, _ string) (*location.Location, error) {
	return nil, location.ErrLocationNotFound
}

func (f *fakeLocationRepo) GetByName(_ context.Context, _ string) (*location.Location, error) {
	return nil, location.ErrLocationNotFound
}

func (f *fakeLocationRepo) Create(_ context.Context, _ *location.Location) error { return nil }
func (f *fakeLocationRepo) Update(_ context.Context, _ *location.Location) error { return nil }
func (f *fakeLocationRepo) Delete(_ context.Context, _ string) error             { return nil }

func (f *fakeLocationRepo) List(_ context.Context) ([]*location.Location, error) {
	return f.locations, nil
}

type fakeReconciler struct {
	calls []time.Time
}

func (f *fakeReconciler) EnsureDailyAttendance(_ context.Context, date time.Time) (int, error) {
	f.calls = append(f.calls, date)
	return 0, nil
}

var today = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fixture struct {
	analyticsRepo *fakeAnalyticsRepo
	userRepo      *fakeUserRepo
	locationRepo  *fakeLocationRepo
	reconciler    *fakeReconciler
	svc           analytics.AnalyticsService
}

func newFixture() *fixture {
	analyticsRepo := &fakeAnalyticsRepo{}
	userRepo := &fakeUserRepo{}
	locationRepo := &fakeLocationRepo{locations: []*location.Location{
		{ID: "loc-1", IsActive: true},
		{ID: "loc-2", IsActive: true},
	}}
	reconciler := &fakeReconciler{}
	clk := &clock.Fixed{Instant: today.Add(10 * time.Hour)}

	return &fixture{
		analyticsRepo: analyticsRepo,
		userRepo:      userRepo,
		locationRepo:  locationRepo,
		reconciler:    reconciler,
		svc:           NewService(analyticsRepo, userRepo, locationRepo, reconciler, clk),
	}
}

func admin() *user.Principal {
	return &user.Principal{UserID: "admin-1", Role: user.RoleAdmin}
}

func supervisor(locationID string) *user.Principal {
	return &user.Principal{UserID: "sup-1", Role: user.RoleSupervisor, LocationID: &locationID}
}

func TestSummary(t *testing.T) {
	f := newFixture()
	f.userRepo.activeEmployees = 10
	f.userRepo.supervisors = 2
	f.analyticsRepo.counts = &analytics.StatusCounts{Present: 5, CheckedOut: 2, Late: 1, NotMarked: 2}

	summary, err := f.svc.Summary(context.Background(), admin(), today)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", summary.Date)
	assert.Equal(t, 10, summary.TotalEmployees)
	assert.Equal(t, 2, summary.TotalSupervisors)
	assert.Equal(t, 2, summary.TotalLocations)
	assert.Equal(t, 7, summary.TodayPresent, "checked_out still counts as present")
	assert.Equal(t, 1, summary.TodayAbsent)
	assert.Equal(t, 1, summary.TodayLate)
	assert.Equal(t, 2, summary.TodayCheckedOut)
	assert.Equal(t, 2, summary.TodayNotMarked)
	assert.Equal(t, 70.0, summary.AttendanceRate)

	require.Len(t, f.reconciler.calls, 1, "summary backfills before reading")
	assert.Equal(t, today, f.reconciler.calls[0])
}

func TestSummary_NoEmployees(t *testing.T) {
	f := newFixture()

	summary, err := f.svc.Summary(context.Background(), admin(), today)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.AttendanceRate)
	assert.Equal(t, 0, summary.TodayAbsent)
}

func TestSummary_AbsentNeverNegative(t *testing.T) {
	f := newFixture()
	f.userRepo.activeEmployees = 3
	f.analyticsRepo.counts = &analytics.StatusCounts{Present: 5}

	summary, err := f.svc.Summary(context.Background(), admin(), today)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TodayAbsent)
}

func TestSummary_RateRounding(t *testing.T) {
	f := newFixture()
	f.userRepo.activeEmployees = 3
	f.analyticsRepo.counts = &analytics.StatusCounts{Present: 1}

	summary, err := f.svc.Summary(context.Background(), admin(), today)
	require.NoError(t, err)
	assert.Equal(t, 33.3, summary.AttendanceRate)
}

func TestSummary_ZeroDateFallsBackToLatestActivity(t *testing.T) {
	f := newFixture()
	f.analyticsRepo.latest = today.AddDate(0, 0, -3)

	summary, err := f.svc.Summary(context.Background(), admin(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-27", summary.Date)
	assert.Equal(t, f.analyticsRepo.latest, f.analyticsRepo.countsDate)
}

func TestSummary_ZeroDateNoActivityFallsBackToToday(t *testing.T) {
	f := newFixture()

	summary, err := f.svc.Summary(context.Background(), admin(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", summary.Date)
}

func TestSummary_IgnoresInactiveLocations(t *testing.T) {
	f := newFixture()
	f.locationRepo.locations = append(f.locationRepo.locations,
		&location.Location{ID: "loc-3", IsActive: false})

	summary, err := f.svc.Summary(context.Background(), admin(), today)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalLocations)
}

func TestSummary_SupervisorScope(t *testing.T) {
	f := newFixture()

	summary, err := f.svc.Summary(context.Background(), supervisor("loc-1"), today)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalLocations)
	require.NotNil(t, f.analyticsRepo.countsLoc)
	assert.Equal(t, "loc-1", *f.analyticsRepo.countsLoc)
}

func TestLateFrequency(t *testing.T) {
	f := newFixture()
	f.analyticsRepo.lateCounts = []*analytics.EmployeeLateCounts{
		{EmployeeID: "emp-1", EmployeeName: "Jordan Price", TotalDays: 20, LateDays: 5},
		{EmployeeID: "emp-2", EmployeeName: "Sam Okafor", TotalDays: 3, LateDays: 1},
	}

	results, err := f.svc.LateFrequency(context.Background(), admin(), analytics.DateRange{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 25.0, results[0].LateRate)
	assert.Equal(t, 33.3, results[1].LateRate)
}

func TestAbsentTrends(t *testing.T) {
	f := newFixture()
	f.userRepo.activeEmployees = 10
	f.analyticsRepo.latest = today
	yesterday := today.AddDate(0, 0, -1)
	f.analyticsRepo.daily = []*analytics.DailyCounts{
		{Date: yesterday, Counts: analytics.StatusCounts{Present: 6, CheckedOut: 1, NotMarked: 3}},
		{Date: today, Counts: analytics.StatusCounts{Present: 4, CheckedOut: 0, NotMarked: 5}},
	}

	points, err := f.svc.AbsentTrends(context.Background(), admin(), analytics.DateRange{})
	require.NoError(t, err)
	require.Len(t, points, 7, "one point per day in the trailing week")

	// Days with no rows at all count every eligible employee as absent.
	assert.Equal(t, "2026-02-24", points[0].Date)
	assert.Equal(t, 10, points[0].AbsentCount)

	// Past dates: anything not present counts as absent.
	assert.Equal(t, "2026-03-01", points[5].Date)
	assert.Equal(t, 3, points[5].AbsentCount)

	// Today: not_marked employees may still check in, so they are excluded.
	assert.Equal(t, "2026-03-02", points[6].Date)
	assert.Equal(t, 1, points[6].AbsentCount)
}

func TestAbsentTrends_WindowHasExactlyRequestedDays(t *testing.T) {
	f := newFixture()
	f.analyticsRepo.latest = today

	points, err := f.svc.AbsentTrends(context.Background(), admin(), analytics.DateRange{Days: 3})
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, "2026-02-28", points[0].Date)
	assert.Equal(t, "2026-03-02", points[2].Date)
}

func TestAbsentTrends_AnchorsAtLatestActivity(t *testing.T) {
	f := newFixture()
	f.analyticsRepo.latest = today.AddDate(0, 0, -4)

	points, err := f.svc.AbsentTrends(context.Background(), admin(), analytics.DateRange{Days: 2})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2026-02-25", points[0].Date)
	assert.Equal(t, "2026-02-26", points[1].Date, "window ends at the last day anyone checked in")
}

func TestByLocation_SupervisorScoped(t *testing.T) {
	f := newFixture()
	f.analyticsRepo.byLocation = []*analytics.GroupCounts{
		{GroupID: "loc-1", GroupName: "HQ", TotalEmployees: 4, Present: 3},
	}

	results, err := f.svc.ByLocation(context.Background(), supervisor("loc-1"), today)
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.NotNil(t, f.analyticsRepo.byLocationLoc)
	assert.Equal(t, "loc-1", *f.analyticsRepo.byLocationLoc)
}

func TestByLocation(t *testing.T) {
	f := newFixture()
	f.analyticsRepo.byLocation = []*analytics.GroupCounts{
		{GroupID: "loc-1", GroupName: "HQ", TotalEmployees: 8, Present: 5, CheckedOut: 1, Late: 2, NotMarked: 2},
	}

	results, err := f.svc.ByLocation(context.Background(), admin(), today)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 6, results[0].Present)
	assert.Equal(t, 0, results[0].Absent, "today's not_marked rows are not absences")
	assert.Equal(t, 2, results[0].Late)
	assert.Equal(t, 75.0, results[0].AttendanceRate)
}

func TestByDepartment_PastDateCountsNotMarkedAsAbsent(t *testing.T) {
	f := newFixture()
	f.analyticsRepo.byDept = []*analytics.GroupCounts{
		{GroupID: "dep-1", GroupName: "Engineering", TotalEmployees: 8, Present: 5, CheckedOut: 1, NotMarked: 2},
	}

	results, err := f.svc.ByDepartment(context.Background(), admin(), today.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Absent)
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, rate(5, 0))
	assert.Equal(t, 100.0, rate(7, 7))
	assert.Equal(t, 66.7, rate(2, 3))
	assert.Equal(t, 0.0, rate(0, 10))
}
