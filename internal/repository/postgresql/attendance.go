package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/worksight/worksight-backend-go/internal/domain/attendance"
	"github.com/worksight/worksight-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.location_id, a.date, a.status,
	a.check_in_time, a.check_out_time,
	a.check_in_lat, a.check_in_lon, a.distance_meters,
	a.is_late, a.late_minutes, a.created_at, a.updated_at,
	u.name AS employee_name,
	l.name AS location_name,
	u.department_id, d.name AS department_name`

const attendanceJoins = `
	FROM attendance_records a
	JOIN users u ON u.id = a.employee_id
	LEFT JOIN locations l ON l.id = a.location_id
	LEFT JOIN departments d ON d.id = u.department_id`

func scanRecord(row pgx.Row) (*attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.LocationID, &rec.Date, &rec.Status,
		&rec.CheckInTime, &rec.CheckOutTime,
		&rec.CheckInLat, &rec.CheckInLon, &rec.DistanceMeters,
		&rec.IsLate, &rec.LateMinutes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
		&rec.LocationName,
		&rec.DepartmentID, &rec.DepartmentName,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) Create(ctx context.Context, rec *attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, location_id, date, status,
			check_in_time, check_out_time,
			check_in_lat, check_in_lon, distance_meters,
			is_late, late_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.LocationID, rec.Date, rec.Status,
		rec.CheckInTime, rec.CheckOutTime,
		rec.CheckInLat, rec.CheckInLon, rec.DistanceMeters,
		rec.IsLate, rec.LateMinutes,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create attendance record: %w", err)
	}

	return nil
}

func (r *attendanceRepository) Update(ctx context.Context, rec *attendance.Record, expected attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	// Guarding on the expected status turns a lost read-check-write race
	// into ErrStatusConflict instead of silently overwriting the winner.
	query := `
		UPDATE attendance_records SET
			status = $2,
			check_in_time = $3,
			check_out_time = $4,
			check_in_lat = $5,
			check_in_lon = $6,
			distance_meters = $7,
			is_late = $8,
			late_minutes = $9,
			updated_at = NOW()
		WHERE id = $1 AND status = $10
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.Status,
		rec.CheckInTime, rec.CheckOutTime,
		rec.CheckInLat, rec.CheckInLon, rec.DistanceMeters,
		rec.IsLate, rec.LateMinutes,
		expected,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrStatusConflict
	}

	return nil
}

func (r *attendanceRepository) List(ctx context.Context, filter *attendance.ListFilter) ([]*attendance.Record, int, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	addArg := func(cond string, val interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, val)
		argPos++
	}

	if filter.EmployeeID != nil {
		addArg("a.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.LocationID != nil {
		addArg("a.location_id = $%d", *filter.LocationID)
	}
	if filter.DepartmentID != nil {
		addArg("u.department_id = $%d", *filter.DepartmentID)
	}
	if filter.Status != nil {
		addArg("a.status = $%d", *filter.Status)
	}
	if filter.DateFrom != nil {
		addArg("a.date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addArg("a.date <= $%d", *filter.DateTo)
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*)` + attendanceJoins + ` WHERE ` + where
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	listQuery := fmt.Sprintf(`SELECT%s%s WHERE %s
		ORDER BY a.date DESC, u.name ASC
		LIMIT $%d OFFSET $%d`,
		attendanceColumns, attendanceJoins, where, argPos, argPos+1)
	args = append(args, filter.PageSize, filter.Offset())

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []*attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, total, nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee attendance: %w", err)
	}
	defer rows.Close()

	var records []*attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

func (r *attendanceRepository) BackfillNotMarked(ctx context.Context, employees []attendance.BackfillEmployee, date time.Time) (int, error) {
	if len(employees) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	employeeIDs := make([]string, len(employees))
	locationIDs := make([]string, len(employees))
	for i, emp := range employees {
		employeeIDs[i] = emp.EmployeeID
		locationIDs[i] = emp.LocationID
	}

	// ON CONFLICT DO NOTHING keeps the backfill idempotent and safe against
	// a concurrent check-in inserting the same (employee, date) pair.
	query := `
		INSERT INTO attendance_records (id, employee_id, location_id, date, status, check_in_lat, check_in_lon)
		SELECT gen_random_uuid(), eid, lid, $1, 'not_marked', 0.0, 0.0
		FROM unnest($2::uuid[], $3::uuid[]) AS pairs(eid, lid)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, date, employeeIDs, locationIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to backfill attendance records: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *attendanceRepository) SweepAbsent(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET status = 'absent', updated_at = NOW()
		WHERE date = $1 AND status = 'not_marked'
	`

	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep absent records: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, date time.Time, locationID *string) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.status, COUNT(*)
		FROM attendance_records a
		WHERE a.date = $1 AND ($2::uuid IS NULL OR a.location_id = $2)
		GROUP BY a.status
	`

	rows, err := q.Query(ctx, query, date, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var status attendance.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	return counts, nil
}
