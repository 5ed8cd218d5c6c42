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

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Title:     "Nazaara Live",
				Slug:      "nazaara-live",
				StartTime: "2025-08-31T20:00:00Z",
				EndTime:   "2025-09-01T02:00:00Z",
				CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, slug, tagline, description, start_time, end_time`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID:  "ev-uuid-1",
			wantErr: false,
		},
		{
			name: "db error",
			event: &domain.Event{
				Title: "Nazaara Live",
				Slug:  "nazaara-live",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantID:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	eventRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "title", "slug", "tagline", "description", "start_time", "end_time",
			"venue_id", "hero_image_url", "ticket_url", "published", "created_at", "updated_at",
		})
	}

	tests := []struct {
		name       string
		slug       string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.Event
		isNotFound bool
	}{
		{
			name: "success",
			slug: "nazaara-live",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, slug, tagline, description`).
					WithArgs("nazaara-live").
					WillReturnRows(eventRows().
						AddRow("ev-1", "Nazaara Live", "nazaara-live", "The biggest night", "", "2025-08-31T20:00:00Z", "2025-09-01T02:00:00Z", "ven-1", "", "", true, created, created))
			},
			want: &domain.Event{
				ID: "ev-1", Title: "Nazaara Live", Slug: "nazaara-live", Tagline: "The biggest night",
				StartTime: "2025-08-31T20:00:00Z", EndTime: "2025-09-01T02:00:00Z",
				VenueID: strPtr("ven-1"), Published: true, CreatedAt: created, UpdatedAt: created,
			},
		},
		{
			name: "not found",
			slug: "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, slug, tagline, description`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetBySlug(ctx, tt.slug)
			if tt.isNotFound {
				require.True(t, errors.Is(err, domain.ErrNotFound))
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_SlugExists(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM events WHERE slug = \$1 AND id <> \$2\)`).
		WithArgs("nazaara-live", "ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewEventRepository(db)
	exists, err := repo.SlugExists(ctx, "nazaara-live", "ev-1")
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ReplaceStops(t *testing.T) {
	ctx := context.Background()

	stops := []*domain.TourStop{
		{ID: "st-1", City: "London", Country: "UK", StartTime: "2025-08-31T20:00:00Z", OrderIndex: 0},
		{ID: "st-2", City: "Toronto", Country: "Canada", StartTime: "2025-09-06T20:00:00Z", OrderIndex: 1},
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM tour_stops WHERE event_id = \$1`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`INSERT INTO tour_stops`).
			WithArgs("st-1", "ev-1", "London", "UK", nil, "2025-08-31T20:00:00Z", "", "", 0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO tour_stops`).
			WithArgs("st-2", "ev-1", "Toronto", "Canada", nil, "2025-09-06T20:00:00Z", "", "", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewEventRepository(db)
		require.NoError(t, repo.ReplaceStops(ctx, "ev-1", stops))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM tour_stops WHERE event_id = \$1`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO tour_stops`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewEventRepository(db)
		require.Error(t, repo.ReplaceStops(ctx, "ev-1", stops))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_ListLineup(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, event_id, artist_id, order_index`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "artist_id", "order_index"}).
			AddRow("ref-1", "ev-1", "a-1", 0).
			AddRow("ref-2", "ev-1", "a-2", 1))

	repo := NewEventRepository(db)
	refs, err := repo.ListLineup(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, refs, 2)
	require.Equal(t, 0, refs[0].OrderIndex)
	require.Equal(t, "a-2", refs[1].ArtistID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name: "db error",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func strPtr(s string) *string { return &s }
