package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"nazaaralive/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGalleryRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	g := &domain.Gallery{
		Title:     "Diwali Ball 2025",
		Slug:      "diwali-ball-2025",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	mock.ExpectQuery(`INSERT INTO galleries \(title, slug, event_id, published, created_at, updated_at\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("gal-1"))

	repo := NewGalleryRepository(db)
	require.NoError(t, repo.Create(ctx, g))
	require.Equal(t, "gal-1", g.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_ListImages(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, gallery_id, url, thumb_url, caption, order_index, created_at`).
		WithArgs("gal-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "gallery_id", "url", "thumb_url", "caption", "order_index", "created_at"}).
			AddRow("img-1", "gal-1", "https://cdn/img-1.jpg", "https://cdn/img-1_thumb.jpg", "", 0, created).
			AddRow("img-2", "gal-1", "https://cdn/img-2.jpg", "https://cdn/img-2_thumb.jpg", "crowd", 1, created))

	repo := NewGalleryRepository(db)
	images, err := repo.ListImages(ctx, "gal-1")
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.Equal(t, 0, images[0].OrderIndex)
	require.Equal(t, "crowd", images[1].Caption)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryRepository_ReplaceImageOrder(t *testing.T) {
	ctx := context.Background()

	images := []*domain.GalleryImage{
		{ID: "img-2", Caption: "crowd", OrderIndex: 0},
		{ID: "img-1", Caption: "", OrderIndex: 1},
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE gallery_images SET order_index = \$1, caption = \$2`).
			WithArgs(0, "crowd", "gal-1", "img-2").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE gallery_images SET order_index = \$1, caption = \$2`).
			WithArgs(1, "", "gal-1", "img-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewGalleryRepository(db)
		require.NoError(t, repo.ReplaceImageOrder(ctx, "gal-1", images))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE gallery_images SET order_index = \$1, caption = \$2`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewGalleryRepository(db)
		require.Error(t, repo.ReplaceImageOrder(ctx, "gal-1", images))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGalleryRepository_RemoveImage_NotFound(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM gallery_images WHERE gallery_id = \$1 AND id = \$2`).
		WithArgs("gal-1", "img-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewGalleryRepository(db)
	err = repo.RemoveImage(ctx, "gal-1", "img-missing")
	require.True(t, errors.Is(err, domain.ErrNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}
