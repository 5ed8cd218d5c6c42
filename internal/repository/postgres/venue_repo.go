package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nazaaralive/internal/domain"
)

type venueRepository struct {
	DB *sql.DB
}

func NewVenueRepository(db *sql.DB) domain.VenueRepository {
	return &venueRepository{DB: db}
}

const venueColumns = `id, name, slug, city, country, address, capacity, map_url, created_at, updated_at`

func scanVenue(row interface{ Scan(...any) error }) (*domain.Venue, error) {
	v := &domain.Venue{}
	var capNull sql.NullInt64
	err := row.Scan(&v.ID, &v.Name, &v.Slug, &v.City, &v.Country, &v.Address, &capNull, &v.MapURL, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if capNull.Valid {
		c := int(capNull.Int64)
		v.Capacity = &c
	}
	return v, nil
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO venues (name, slug, city, country, address, capacity, map_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var capArg any
	if v.Capacity != nil {
		capArg = *v.Capacity
	}
	return r.DB.QueryRowContext(ctx, query, v.Name, v.Slug, v.City, v.Country, v.Address, capArg, v.MapURL, v.CreatedAt, v.UpdatedAt).Scan(&v.ID)
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	v, err := scanVenue(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *venueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $1, slug = $2, city = $3, country = $4, address = $5, capacity = $6, map_url = $7, updated_at = $8
		WHERE id = $9
	`
	var capArg any
	if v.Capacity != nil {
		capArg = *v.Capacity
	}
	result, err := r.DB.ExecContext(ctx, query, v.Name, v.Slug, v.City, v.Country, v.Address, capArg, v.MapURL, v.UpdatedAt, v.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *venueRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM venues WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
