package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nazaaralive/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{DB: db}
}

const bookingColumns = `id, name, email, phone, event_type, city, message, preferred_date, status, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*domain.BookingInquiry, error) {
	b := &domain.BookingInquiry{}
	err := row.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.EventType, &b.City, &b.Message, &b.PreferredDate, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.BookingInquiry) error {
	query := `
		INSERT INTO booking_inquiries (name, email, phone, event_type, city, message, preferred_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, b.Name, b.Email, b.Phone, b.EventType, b.City, b.Message, b.PreferredDate, b.Status, b.CreatedAt).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.BookingInquiry, error) {
	query := `SELECT ` + bookingColumns + ` FROM booking_inquiries WHERE id = $1`
	b, err := scanBooking(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]*domain.BookingInquiry, error) {
	query := `SELECT ` + bookingColumns + ` FROM booking_inquiries ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	inquiries := make([]*domain.BookingInquiry, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, b)
	}
	return inquiries, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.BookingInquiry, error) {
	query := `
		UPDATE booking_inquiries SET status = $1
		WHERE id = $2
		RETURNING ` + bookingColumns
	b, err := scanBooking(r.DB.QueryRowContext(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
