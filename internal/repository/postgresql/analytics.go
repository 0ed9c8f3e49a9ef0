package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worksight/worksight-backend-go/internal/domain/analytics"
	"github.com/worksight/worksight-backend-go/internal/pkg/database"
)

type analyticsRepository struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

const statusCountColumns = `
	COUNT(*) FILTER (WHERE a.status = 'present') AS present,
	COUNT(*) FILTER (WHERE a.status = 'checked_out') AS checked_out,
	COUNT(*) FILTER (WHERE a.status = 'absent') AS absent,
	COUNT(*) FILTER (WHERE a.is_late) AS late,
	COUNT(*) FILTER (WHERE a.status = 'not_marked') AS not_marked`

func (r *analyticsRepository) StatusCountsForDate(ctx context.Context, date time.Time, locationID *string) (*analytics.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + statusCountColumns + `
		FROM attendance_records a
		WHERE a.date = $1 AND ($2::uuid IS NULL OR a.location_id = $2)
	`

	var counts analytics.StatusCounts
	err := q.QueryRow(ctx, query, date, locationID).Scan(
		&counts.Present, &counts.CheckedOut, &counts.Absent, &counts.Late, &counts.NotMarked,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count statuses for date: %w", err)
	}

	return &counts, nil
}

func (r *analyticsRepository) DailyStatusCounts(ctx context.Context, rng analytics.DateRange, locationID *string) ([]*analytics.DailyCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.date,` + statusCountColumns + `
		FROM attendance_records a
		WHERE a.date >= $1 AND a.date <= $2
		  AND ($3::uuid IS NULL OR a.location_id = $3)
		GROUP BY a.date
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, rng.From, rng.To, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count statuses by date: %w", err)
	}
	defer rows.Close()

	var days []*analytics.DailyCounts
	for rows.Next() {
		var d analytics.DailyCounts
		if err := rows.Scan(&d.Date, &d.Counts.Present, &d.Counts.CheckedOut, &d.Counts.Absent, &d.Counts.Late, &d.Counts.NotMarked); err != nil {
			return nil, fmt.Errorf("failed to scan daily counts: %w", err)
		}
		days = append(days, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily counts: %w", err)
	}

	return days, nil
}

func (r *analyticsRepository) LatestDateWithActivity(ctx context.Context) (time.Time, error) {
	q := GetQuerier(ctx, r.db)

	var date *time.Time
	err := q.QueryRow(ctx,
		`SELECT MAX(date) FROM attendance_records WHERE status IN ('present', 'checked_out')`,
	).Scan(&date)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to find latest attendance date: %w", err)
	}
	if date == nil {
		return time.Time{}, nil
	}

	return *date, nil
}

func (r *analyticsRepository) LateCountsByEmployee(ctx context.Context, rng analytics.DateRange, locationID *string) ([]*analytics.EmployeeLateCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			u.id, u.name, l.name, d.name,
			COUNT(*) FILTER (WHERE a.status IN ('present', 'checked_out')) AS total_days,
			COUNT(*) FILTER (WHERE a.is_late) AS late_days
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id
		LEFT JOIN locations l ON l.id = u.location_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE a.date >= $1 AND a.date <= $2
		  AND ($3::uuid IS NULL OR a.location_id = $3)
		GROUP BY u.id, u.name, l.name, d.name
		HAVING COUNT(*) FILTER (WHERE a.status IN ('present', 'checked_out')) > 0
		ORDER BY late_days DESC, u.name ASC
	`

	rows, err := q.Query(ctx, query, rng.From, rng.To, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count lateness by employee: %w", err)
	}
	defer rows.Close()

	var results []*analytics.EmployeeLateCounts
	for rows.Next() {
		var c analytics.EmployeeLateCounts
		if err := rows.Scan(&c.EmployeeID, &c.EmployeeName, &c.LocationName, &c.DepartmentName, &c.TotalDays, &c.LateDays); err != nil {
			return nil, fmt.Errorf("failed to scan lateness counts: %w", err)
		}
		results = append(results, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lateness counts: %w", err)
	}

	return results, nil
}

func (r *analyticsRepository) CountsByLocation(ctx context.Context, date time.Time, locationID *string) ([]*analytics.GroupCounts, error) {
	query := `
		SELECT
			l.id, l.name,
			COUNT(DISTINCT u.id) FILTER (WHERE u.role = 'Employee' AND u.status = 'Active') AS total_employees,
			COUNT(a.id) FILTER (WHERE a.status = 'present') AS present,
			COUNT(a.id) FILTER (WHERE a.status = 'checked_out') AS checked_out,
			COUNT(a.id) FILTER (WHERE a.is_late) AS late,
			COUNT(a.id) FILTER (WHERE a.status = 'not_marked') AS not_marked
		FROM locations l
		LEFT JOIN users u ON u.location_id = l.id
		LEFT JOIN attendance_records a ON a.employee_id = u.id AND a.date = $1
		WHERE l.is_active AND ($2::uuid IS NULL OR l.id = $2)
		GROUP BY l.id, l.name
		ORDER BY l.name ASC
	`

	return r.queryGroupCounts(ctx, query, date, locationID)
}

func (r *analyticsRepository) CountsByDepartment(ctx context.Context, date time.Time, locationID *string) ([]*analytics.GroupCounts, error) {
	query := `
		SELECT
			d.id, d.name,
			COUNT(DISTINCT u.id) FILTER (WHERE u.role = 'Employee' AND u.status = 'Active') AS total_employees,
			COUNT(a.id) FILTER (WHERE a.status = 'present') AS present,
			COUNT(a.id) FILTER (WHERE a.status = 'checked_out') AS checked_out,
			COUNT(a.id) FILTER (WHERE a.is_late) AS late,
			COUNT(a.id) FILTER (WHERE a.status = 'not_marked') AS not_marked
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id AND ($2::uuid IS NULL OR u.location_id = $2)
		LEFT JOIN attendance_records a ON a.employee_id = u.id AND a.date = $1
		GROUP BY d.id, d.name
		ORDER BY d.name ASC
	`

	return r.queryGroupCounts(ctx, query, date, locationID)
}

func (r *analyticsRepository) queryGroupCounts(ctx context.Context, query string, args ...interface{}) ([]*analytics.GroupCounts, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query group counts: %w", err)
	}
	defer rows.Close()

	var groups []*analytics.GroupCounts
	for rows.Next() {
		var g analytics.GroupCounts
		if err := rows.Scan(&g.GroupID, &g.GroupName, &g.TotalEmployees, &g.Present, &g.CheckedOut, &g.Late, &g.NotMarked); err != nil {
			return nil, fmt.Errorf("failed to scan group counts: %w", err)
		}
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group counts: %w", err)
	}

	return groups, nil
}
