package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/worksight/worksight-backend-go/internal/domain/shift"
	"github.com/worksight/worksight-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	s.id, s.location_id, s.start_time, s.end_time, s.grace_minutes,
	s.created_at, s.updated_at, l.name AS location_name`

const shiftJoins = `
	FROM shift_configs s
	JOIN locations l ON l.id = s.location_id`

func scanShift(row pgx.Row) (*shift.Config, error) {
	var cfg shift.Config
	err := row.Scan(
		&cfg.ID, &cfg.LocationID, &cfg.StartTime, &cfg.EndTime, &cfg.GraceMinutes,
		&cfg.CreatedAt, &cfg.UpdatedAt, &cfg.LocationName,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	cfg, err := scanShift(q.QueryRow(ctx,
		`SELECT`+shiftColumns+shiftJoins+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift config: %w", err)
	}

	return cfg, nil
}

func (r *shiftRepository) GetByLocation(ctx context.Context, locationID string) (*shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	cfg, err := scanShift(q.QueryRow(ctx,
		`SELECT`+shiftColumns+shiftJoins+` WHERE s.location_id = $1`, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift config by location: %w", err)
	}

	return cfg, nil
}

func (r *shiftRepository) Create(ctx context.Context, cfg *shift.Config) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_configs (id, location_id, start_time, end_time, grace_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		cfg.ID, cfg.LocationID, cfg.StartTime, cfg.EndTime, cfg.GraceMinutes,
	).Scan(&cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ErrShiftExists
		}
		return fmt.Errorf("failed to create shift config: %w", err)
	}

	return nil
}

func (r *shiftRepository) Update(ctx context.Context, cfg *shift.Config) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_configs SET
			start_time = $2, end_time = $3, grace_minutes = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, cfg.ID, cfg.StartTime, cfg.EndTime, cfg.GraceMinutes)
	if err != nil {
		return fmt.Errorf("failed to update shift config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepository) List(ctx context.Context) ([]*shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT`+shiftColumns+shiftJoins+` ORDER BY l.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift configs: %w", err)
	}
	defer rows.Close()

	var cfgs []*shift.Config
	for rows.Next() {
		cfg, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift config: %w", err)
		}
		cfgs = append(cfgs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift configs: %w", err)
	}

	return cfgs, nil
}
