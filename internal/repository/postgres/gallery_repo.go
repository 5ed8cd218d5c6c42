package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nazaaralive/internal/domain"
)

type galleryRepository struct {
	DB *sql.DB
}

func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{DB: db}
}

const galleryColumns = `id, title, slug, event_id, published, created_at, updated_at`

func scanGallery(row interface{ Scan(...any) error }) (*domain.Gallery, error) {
	g := &domain.Gallery{}
	var eventNull sql.NullString
	err := row.Scan(&g.ID, &g.Title, &g.Slug, &eventNull, &g.Published, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if eventNull.Valid {
		g.EventID = &eventNull.String
	}
	return g, nil
}

func (r *galleryRepository) Create(ctx context.Context, g *domain.Gallery) error {
	query := `
		INSERT INTO galleries (title, slug, event_id, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, g.Title, g.Slug, g.EventID, g.Published, g.CreatedAt, g.UpdatedAt).Scan(&g.ID)
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*domain.Gallery, error) {
	query := `SELECT ` + galleryColumns + ` FROM galleries WHERE id = $1`
	g, err := scanGallery(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *galleryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Gallery, error) {
	query := `SELECT ` + galleryColumns + ` FROM galleries WHERE slug = $1`
	g, err := scanGallery(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *galleryRepository) list(ctx context.Context, query string) ([]*domain.Gallery, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	galleries := make([]*domain.Gallery, 0)
	for rows.Next() {
		g, err := scanGallery(rows)
		if err != nil {
			return nil, err
		}
		galleries = append(galleries, g)
	}
	return galleries, rows.Err()
}

func (r *galleryRepository) List(ctx context.Context) ([]*domain.Gallery, error) {
	return r.list(ctx, `SELECT `+galleryColumns+` FROM galleries ORDER BY created_at DESC`)
}

func (r *galleryRepository) ListPublished(ctx context.Context) ([]*domain.Gallery, error) {
	return r.list(ctx, `SELECT `+galleryColumns+` FROM galleries WHERE published = TRUE ORDER BY created_at DESC`)
}

func (r *galleryRepository) Update(ctx context.Context, g *domain.Gallery) error {
	query := `
		UPDATE galleries
		SET title = $1, slug = $2, event_id = $3, published = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query, g.Title, g.Slug, g.EventID, g.Published, g.UpdatedAt, g.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM galleries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *galleryRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM galleries WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *galleryRepository) ListImages(ctx context.Context, galleryID string) ([]*domain.GalleryImage, error) {
	query := `
		SELECT id, gallery_id, url, thumb_url, caption, order_index, created_at
		FROM gallery_images
		WHERE gallery_id = $1
		ORDER BY order_index ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, galleryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		img := &domain.GalleryImage{}
		if err := rows.Scan(&img.ID, &img.GalleryID, &img.URL, &img.ThumbURL, &img.Caption, &img.OrderIndex, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *galleryRepository) AddImage(ctx context.Context, img *domain.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (id, gallery_id, url, thumb_url, caption, order_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, img.ID, img.GalleryID, img.URL, img.ThumbURL, img.Caption, img.OrderIndex, img.CreatedAt)
	return err
}

func (r *galleryRepository) RemoveImage(ctx context.Context, galleryID, imageID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM gallery_images WHERE gallery_id = $1 AND id = $2`, galleryID, imageID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceImageOrder rewrites order_index and caption for the given images in
// one transaction. Callers assign dense indices before the call.
func (r *galleryRepository) ReplaceImageOrder(ctx context.Context, galleryID string, images []*domain.GalleryImage) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	update := `UPDATE gallery_images SET order_index = $1, caption = $2 WHERE gallery_id = $3 AND id = $4`
	for _, img := range images {
		if _, err := tx.ExecContext(ctx, update, img.OrderIndex, img.Caption, galleryID, img.ID); err != nil {
			return fmt.Errorf("update image %s: %w", img.ID, err)
		}
	}
	return tx.Commit()
}
