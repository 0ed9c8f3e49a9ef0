package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	u.id, u.name, u.email, u.password_hash, u.role,
	u.location_id, u.department_id, u.supervisor_id, u.status,
	u.created_at, u.updated_at,
	l.name AS location_name, d.name AS department_name`

const userJoins = `
	FROM users u
	LEFT JOIN locations l ON l.id = u.location_id
	LEFT JOIN departments d ON d.id = u.department_id`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.LocationID, &u.DepartmentID, &u.SupervisorID, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
		&u.LocationName, &u.DepartmentName,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + userJoins + ` WHERE u.id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + userJoins + ` WHERE LOWER(u.email) = LOWER($1)`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, name, email, password_hash, role, location_id, department_id, supervisor_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role,
		u.LocationID, u.DepartmentID, u.SupervisorID, u.Status,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, id string, req *user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argPos := 2

	addSet := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argPos))
		args = append(args, val)
		argPos++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.LocationID != nil {
		addSet("location_id", *req.LocationID)
	}
	if req.DepartmentID != nil {
		addSet("department_id", *req.DepartmentID)
	}
	if req.SupervisorID != nil {
		addSet("supervisor_id", *req.SupervisorID)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $1", strings.Join(sets, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET status = 'Inactive', updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) List(ctx context.Context, filter *user.UserFilter) ([]*user.User, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	addArg := func(cond string, val interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, val)
		argPos++
	}

	if filter.Role != nil {
		addArg("u.role = $%d", *filter.Role)
	}
	if filter.Status != nil {
		addArg("u.status = $%d", *filter.Status)
	}
	if filter.LocationID != nil {
		addArg("u.location_id = $%d", *filter.LocationID)
	}
	if filter.DepartmentID != nil {
		addArg("u.department_id = $%d", *filter.DepartmentID)
	}
	if filter.SupervisorID != nil {
		addArg("u.supervisor_id = $%d", *filter.SupervisorID)
	}

	query := `SELECT` + userColumns + userJoins + ` WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY u.name ASC`

	return r.queryUsers(ctx, q, query, args...)
}

func (r *userRepository) ListActiveEmployees(ctx context.Context, locationID *string) ([]*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + userJoins + `
		WHERE u.role = 'Employee' AND u.status = 'Active'
		  AND ($1::uuid IS NULL OR u.location_id = $1)
		ORDER BY u.name ASC`

	return r.queryUsers(ctx, q, query, locationID)
}

func (r *userRepository) ListBySupervisor(ctx context.Context, supervisorID string) ([]*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + userJoins + `
		WHERE u.supervisor_id = $1
		ORDER BY u.name ASC`

	return r.queryUsers(ctx, q, query, supervisorID)
}

func (r *userRepository) CountActiveEmployees(ctx context.Context, locationID, departmentID *string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM users u
		WHERE u.role = 'Employee' AND u.status = 'Active'
		  AND ($1::uuid IS NULL OR u.location_id = $1)
		  AND ($2::uuid IS NULL OR u.department_id = $2)
	`

	var count int
	if err := q.QueryRow(ctx, query, locationID, departmentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role user.Role, locationID *string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM users u
		WHERE u.role = $1 AND u.status = 'Active'
		  AND ($2::uuid IS NULL OR u.location_id = $2)
	`

	var count int
	if err := q.QueryRow(ctx, query, role, locationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}

	return count, nil
}

func (r *userRepository) queryUsers(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]*user.User, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
