package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"nazaaralive/internal/domain"
)

type artistRepository struct {
	DB *sql.DB
}

func NewArtistRepository(db *sql.DB) domain.ArtistRepository {
	return &artistRepository{DB: db}
}

const artistColumns = `id, name, slug, bio, image_url, instagram, created_at, updated_at`

func scanArtist(row interface{ Scan(...any) error }) (*domain.Artist, error) {
	a := &domain.Artist{}
	err := row.Scan(&a.ID, &a.Name, &a.Slug, &a.Bio, &a.ImageURL, &a.Instagram, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := `
		INSERT INTO artists (name, slug, bio, image_url, instagram, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, a.Name, a.Slug, a.Bio, a.ImageURL, a.Instagram, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
}

func (r *artistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`
	a, err := scanArtist(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetByIDs returns the artists whose IDs are in ids. Missing IDs are simply
// absent from the result; callers decide whether that matters.
func (r *artistRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Artist, error) {
	if len(ids) == 0 {
		return []*domain.Artist{}, nil
	}
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = ANY($1)`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0, len(ids))
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func (r *artistRepository) List(ctx context.Context) ([]*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func (r *artistRepository) Update(ctx context.Context, a *domain.Artist) error {
	query := `
		UPDATE artists
		SET name = $1, slug = $2, bio = $3, image_url = $4, instagram = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query, a.Name, a.Slug, a.Bio, a.ImageURL, a.Instagram, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *artistRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM artists WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
