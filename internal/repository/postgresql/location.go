package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/pkg/database"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

const locationColumns = `id, name, address, latitude, longitude, allowed_radius_meters, is_active, created_at, updated_at`

func scanLocation(row pgx.Row) (*location.Location, error) {
	var loc location.Location
	err := row.Scan(
		&loc.ID, &loc.Name, &loc.Address,
		&loc.Latitude, &loc.Longitude, &loc.AllowedRadiusMeters, &loc.IsActive,
		&loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*location.Location, error) {
	q := GetQuerier(ctx, r.db)

	loc, err := scanLocation(q.QueryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, location.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return loc, nil
}

func (r *locationRepository) GetByName(ctx context.Context, name string) (*location.Location, error) {
	q := GetQuerier(ctx, r.db)

	loc, err := scanLocation(q.QueryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE LOWER(name) = LOWER($1)`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, location.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location by name: %w", err)
	}

	return loc, nil
}

func (r *locationRepository) Create(ctx context.Context, loc *location.Location) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO locations (id, name, address, latitude, longitude, allowed_radius_meters, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		loc.ID, loc.Name, loc.Address, loc.Latitude, loc.Longitude, loc.AllowedRadiusMeters, loc.IsActive,
	).Scan(&loc.CreatedAt, &loc.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return location.ErrNameExists
		}
		return fmt.Errorf("failed to create location: %w", err)
	}

	return nil
}

func (r *locationRepository) Update(ctx context.Context, loc *location.Location) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE locations SET
			name = $2, address = $3, latitude = $4, longitude = $5,
			allowed_radius_meters = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		loc.ID, loc.Name, loc.Address, loc.Latitude, loc.Longitude, loc.AllowedRadiusMeters, loc.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return location.ErrNameExists
		}
		return fmt.Errorf("failed to update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return location.ErrLocationInUse
		}
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}

func (r *locationRepository) List(ctx context.Context) ([]*location.Location, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locs []*location.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locs = append(locs, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return locs, nil
}
