package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/worksight/worksight-backend-go/internal/domain/attendance"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/pkg/clock"
)

// Service keeps the attendance table consistent with the employee roster:
// every active employee with an assigned location gets a row for today, and
// rows still untouched by end of day are swept to absent. Both operations
// are idempotent, so they are safe to run from the cron loop and inline
// before analytics reads.
// Transactor runs fn atomically, so a backfill and the sweep that follows
// it either both land or neither does.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	tx             Transactor
	clock          clock.Clock
	absentCutoff   int
}

func NewService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	tx Transactor,
	clk clock.Clock,
	absentCutoffHour int,
) *Service {
	return &Service{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		tx:             tx,
		clock:          clk,
		absentCutoff:   absentCutoffHour,
	}
}

// EnsureDailyAttendance inserts a not_marked record for every active
// employee with an assigned location who has no record on the date yet.
// Running it twice changes nothing the second time.
func (s *Service) EnsureDailyAttendance(ctx context.Context, date time.Time) (int, error) {
	employees, err := s.userRepo.ListActiveEmployees(ctx, nil)
	if err != nil {
		return 0, err
	}

	eligible := make([]attendance.BackfillEmployee, 0, len(employees))
	for _, emp := range employees {
		if emp.LocationID == nil {
			continue
		}
		eligible = append(eligible, attendance.BackfillEmployee{
			EmployeeID: emp.ID,
			LocationID: *emp.LocationID,
		})
	}

	inserted, err := s.attendanceRepo.BackfillNotMarked(ctx, eligible, date)
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		slog.Info("Attendance backfill completed", "date", date.Format("2006-01-02"), "inserted", inserted)
	}

	return inserted, nil
}

// MarkAbsent flips every not_marked record on the date to absent.
func (s *Service) MarkAbsent(ctx context.Context, date time.Time) (int, error) {
	swept, err := s.attendanceRepo.SweepAbsent(ctx, date)
	if err != nil {
		return 0, err
	}

	if swept > 0 {
		slog.Info("Absent sweep completed", "date", date.Format("2006-01-02"), "marked_absent", swept)
	}

	return swept, nil
}

// ReconcileToday backfills today's roster. Intended as a cron job body.
func (s *Service) ReconcileToday(ctx context.Context) error {
	_, err := s.EnsureDailyAttendance(ctx, s.clock.Today())
	return err
}

// AutoMarkAbsentAfterHours sweeps today's not_marked records to absent,
// but only once the local wall clock has passed the cutoff hour. Before
// the cutoff it does nothing, so employees still have time to check in.
//
// The swept date is the local calendar day, not the UTC one: at 19:00 in
// a zone west of Greenwich the UTC date has already rolled over, and
// sweeping it would mark a day absent before it has begun.
func (s *Service) AutoMarkAbsentAfterHours(ctx context.Context) error {
	local := s.clock.LocalNow()
	if local.Hour() < s.absentCutoff {
		return nil
	}

	date := clock.CalendarDate(local)
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.EnsureDailyAttendance(ctx, date); err != nil {
			return err
		}
		_, err := s.MarkAbsent(ctx, date)
		return err
	})
}
