package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nazaaralive/internal/domain"
)

type djRepository struct {
	DB *sql.DB
}

func NewDJRepository(db *sql.DB) domain.DJRepository {
	return &djRepository{DB: db}
}

const djColumns = `id, name, slug, title, specialty, instagram, image_url, resident, created_at, updated_at`

func scanDJ(row interface{ Scan(...any) error }) (*domain.DJ, error) {
	d := &domain.DJ{}
	err := row.Scan(&d.ID, &d.Name, &d.Slug, &d.Title, &d.Specialty, &d.Instagram, &d.ImageURL, &d.Resident, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *djRepository) Create(ctx context.Context, d *domain.DJ) error {
	query := `
		INSERT INTO djs (name, slug, title, specialty, instagram, image_url, resident, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, d.Name, d.Slug, d.Title, d.Specialty, d.Instagram, d.ImageURL, d.Resident, d.CreatedAt, d.UpdatedAt).Scan(&d.ID)
}

func (r *djRepository) GetByID(ctx context.Context, id string) (*domain.DJ, error) {
	query := `SELECT ` + djColumns + ` FROM djs WHERE id = $1`
	d, err := scanDJ(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *djRepository) List(ctx context.Context) ([]*domain.DJ, error) {
	query := `SELECT ` + djColumns + ` FROM djs ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	djs := make([]*domain.DJ, 0)
	for rows.Next() {
		d, err := scanDJ(rows)
		if err != nil {
			return nil, err
		}
		djs = append(djs, d)
	}
	return djs, rows.Err()
}

func (r *djRepository) Update(ctx context.Context, d *domain.DJ) error {
	query := `
		UPDATE djs
		SET name = $1, slug = $2, title = $3, specialty = $4, instagram = $5, image_url = $6, resident = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := r.DB.ExecContext(ctx, query, d.Name, d.Slug, d.Title, d.Specialty, d.Instagram, d.ImageURL, d.Resident, d.UpdatedAt, d.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *djRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM djs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *djRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM djs WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
