package analytics

import (
	"context"
	"math"
	"time"

	"github.com/worksight/worksight-backend-go/internal/domain/analytics"
	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/pkg/clock"
)

// Reconciler backfills placeholder records so counts have a complete
// denominator. Every read here runs it for the dates it is about to query.
type Reconciler interface {
	EnsureDailyAttendance(ctx context.Context, date time.Time) (int, error)
}

type Service struct {
	analyticsRepo analytics.AnalyticsRepository
	userRepo      user.UserRepository
	locationRepo  location.LocationRepository
	reconciler    Reconciler
	clock         clock.Clock
}

func NewService(
	analyticsRepo analytics.AnalyticsRepository,
	userRepo user.UserRepository,
	locationRepo location.LocationRepository,
	reconciler Reconciler,
	clk clock.Clock,
) analytics.AnalyticsService {
	return &Service{
		analyticsRepo: analyticsRepo,
		userRepo:      userRepo,
		locationRepo:  locationRepo,
		reconciler:    reconciler,
		clock:         clk,
	}
}

func (s *Service) Summary(ctx context.Context, principal *user.Principal, date time.Time) (*analytics.Summary, error) {
	scope := principal.ScopedLocationID()

	if _, err := s.reconciler.EnsureDailyAttendance(ctx, s.clock.Today()); err != nil {
		return nil, err
	}

	if date.IsZero() {
		latest, err := s.analyticsRepo.LatestDateWithActivity(ctx)
		if err != nil {
			return nil, err
		}
		date = latest
		if date.IsZero() {
			date = s.clock.Today()
		}
	}

	counts, err := s.analyticsRepo.StatusCountsForDate(ctx, date, scope)
	if err != nil {
		return nil, err
	}

	eligible, err := s.userRepo.CountActiveEmployees(ctx, scope, nil)
	if err != nil {
		return nil, err
	}

	supervisors, err := s.userRepo.CountByRole(ctx, user.RoleSupervisor, scope)
	if err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	totalLocations := 0
	for _, loc := range locations {
		if loc.IsActive {
			totalLocations++
		}
	}
	if scope != nil {
		totalLocations = 1
	}

	present := counts.Present + counts.CheckedOut
	absent := eligible - present - counts.NotMarked
	if absent < 0 {
		absent = 0
	}

	return &analytics.Summary{
		Date:             date.Format("2006-01-02"),
		TotalEmployees:   eligible,
		TotalSupervisors: supervisors,
		TotalLocations:   totalLocations,
		TodayPresent:     present,
		TodayAbsent:      absent,
		TodayLate:        counts.Late,
		TodayCheckedOut:  counts.CheckedOut,
		TodayNotMarked:   counts.NotMarked,
		AttendanceRate:   rate(present, eligible),
	}, nil
}

func (s *Service) LateFrequency(ctx context.Context, principal *user.Principal, rng analytics.DateRange) ([]*analytics.LateFrequency, error) {
	rng = s.defaultRange(rng)
	scope := principal.ScopedLocationID()

	if _, err := s.reconciler.EnsureDailyAttendance(ctx, s.clock.Today()); err != nil {
		return nil, err
	}

	counts, err := s.analyticsRepo.LateCountsByEmployee(ctx, rng, scope)
	if err != nil {
		return nil, err
	}

	results := make([]*analytics.LateFrequency, 0, len(counts))
	for _, c := range counts {
		results = append(results, &analytics.LateFrequency{
			EmployeeID:     c.EmployeeID,
			EmployeeName:   c.EmployeeName,
			LocationName:   c.LocationName,
			DepartmentName: c.DepartmentName,
			TotalDays:      c.TotalDays,
			LateDays:       c.LateDays,
			LateRate:       rate(c.LateDays, c.TotalDays),
		})
	}

	return results, nil
}

const defaultTrendDays = 7

func (s *Service) AbsentTrends(ctx context.Context, principal *user.Principal, rng analytics.DateRange) ([]*analytics.AbsentTrendPoint, error) {
	scope := principal.ScopedLocationID()
	today := s.clock.Today()

	if _, err := s.reconciler.EnsureDailyAttendance(ctx, today); err != nil {
		return nil, err
	}

	// A trailing window is anchored at the latest date with actual
	// check-in activity, so a fresh Monday does not bury last week's
	// trend behind empty days.
	if rng.To.IsZero() {
		latest, err := s.analyticsRepo.LatestDateWithActivity(ctx)
		if err != nil {
			return nil, err
		}
		rng.To = latest
		if rng.To.IsZero() {
			rng.To = today
		}
	}
	if rng.From.IsZero() {
		days := rng.Days
		if days <= 0 {
			days = defaultTrendDays
		}
		rng.From = rng.To.AddDate(0, 0, -(days - 1))
	}

	eligible, err := s.userRepo.CountActiveEmployees(ctx, scope, nil)
	if err != nil {
		return nil, err
	}

	counted, err := s.analyticsRepo.DailyStatusCounts(ctx, rng, scope)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]analytics.StatusCounts, len(counted))
	for _, d := range counted {
		byDate[d.Date.Format("2006-01-02")] = d.Counts
	}

	// One point per day in the window; a day with no rows at all counts
	// every eligible employee as absent.
	var points []*analytics.AbsentTrendPoint
	for d := rng.From; !d.After(rng.To); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		counts := byDate[key]

		present := counts.Present + counts.CheckedOut
		absent := eligible - present
		// Today's not_marked rows are still undecided, not absences.
		if d.Equal(today) {
			absent -= counts.NotMarked
		}
		if absent < 0 {
			absent = 0
		}
		points = append(points, &analytics.AbsentTrendPoint{
			Date:        key,
			AbsentCount: absent,
		})
	}

	return points, nil
}

func (s *Service) ByLocation(ctx context.Context, principal *user.Principal, date time.Time) ([]*analytics.GroupBreakdown, error) {
	date = s.defaultDate(date)

	if _, err := s.reconciler.EnsureDailyAttendance(ctx, s.clock.Today()); err != nil {
		return nil, err
	}

	groups, err := s.analyticsRepo.CountsByLocation(ctx, date, principal.ScopedLocationID())
	if err != nil {
		return nil, err
	}

	return s.breakdowns(groups, date), nil
}

func (s *Service) ByDepartment(ctx context.Context, principal *user.Principal, date time.Time) ([]*analytics.GroupBreakdown, error) {
	date = s.defaultDate(date)

	if _, err := s.reconciler.EnsureDailyAttendance(ctx, s.clock.Today()); err != nil {
		return nil, err
	}

	groups, err := s.analyticsRepo.CountsByDepartment(ctx, date, principal.ScopedLocationID())
	if err != nil {
		return nil, err
	}

	return s.breakdowns(groups, date), nil
}

func (s *Service) breakdowns(groups []*analytics.GroupCounts, date time.Time) []*analytics.GroupBreakdown {
	today := s.clock.Today()

	results := make([]*analytics.GroupBreakdown, 0, len(groups))
	for _, g := range groups {
		present := g.Present + g.CheckedOut
		absent := g.TotalEmployees - present
		if date.Equal(today) {
			absent -= g.NotMarked
		}
		if absent < 0 {
			absent = 0
		}
		results = append(results, &analytics.GroupBreakdown{
			GroupID:        g.GroupID,
			GroupName:      g.GroupName,
			TotalEmployees: g.TotalEmployees,
			Present:        present,
			Absent:         absent,
			Late:           g.Late,
			AttendanceRate: rate(present, g.TotalEmployees),
		})
	}

	return results
}

func (s *Service) defaultRange(rng analytics.DateRange) analytics.DateRange {
	if rng.To.IsZero() {
		rng.To = s.clock.Today()
	}
	if rng.From.IsZero() {
		rng.From = rng.To.AddDate(0, 0, -30)
	}
	return rng
}

func (s *Service) defaultDate(date time.Time) time.Time {
	if date.IsZero() {
		return s.clock.Today()
	}
	return date
}

// rate is numerator/denominator as a percentage rounded to one decimal,
// defined as 0 when the denominator is 0.
func rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return math.Round(float64(numerator)/float64(denominator)*1000) / 10
}
