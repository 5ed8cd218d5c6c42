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

func TestVenueRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		id         string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.Venue
		isNotFound bool
	}{
		{
			name: "success with capacity",
			id:   "ven-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, slug, city, country, address, capacity, map_url`).
					WithArgs("ven-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "city", "country", "address", "capacity", "map_url", "created_at", "updated_at"}).
						AddRow("ven-1", "O2 Academy", "o2-academy", "London", "UK", "16 Parkfield St", 2000, "", created, created))
			},
			want: &domain.Venue{
				ID: "ven-1", Name: "O2 Academy", Slug: "o2-academy", City: "London", Country: "UK",
				Address: "16 Parkfield St", Capacity: intPtr(2000), CreatedAt: created, UpdatedAt: created,
			},
		},
		{
			name: "success null capacity",
			id:   "ven-2",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, slug, city, country, address, capacity, map_url`).
					WithArgs("ven-2").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "city", "country", "address", "capacity", "map_url", "created_at", "updated_at"}).
						AddRow("ven-2", "Secret Loft", "secret-loft", "Toronto", "Canada", "", nil, "", created, created))
			},
			want: &domain.Venue{
				ID: "ven-2", Name: "Secret Loft", Slug: "secret-loft", City: "Toronto", Country: "Canada",
				CreatedAt: created, UpdatedAt: created,
			},
		},
		{
			name: "not found",
			id:   "ven-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, slug, city, country, address, capacity, map_url`).
					WithArgs("ven-missing").
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
			repo := NewVenueRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
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

func TestVenueRepository_List(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, slug, city, country, address, capacity, map_url`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "city", "country", "address", "capacity", "map_url", "created_at", "updated_at"}).
			AddRow("ven-1", "Koko", "koko", "London", "UK", "", nil, "", created, created).
			AddRow("ven-2", "Rebel", "rebel", "Toronto", "Canada", "", 3000, "", created, created))

	repo := NewVenueRepository(db)
	venues, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, venues, 2)
	require.Equal(t, "Koko", venues[0].Name)
	require.NotNil(t, venues[1].Capacity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func intPtr(i int) *int { return &i }
