package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nazaaralive/internal/domain"
)

type settingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) domain.SettingsRepository {
	return &settingsRepository{DB: db}
}

// Get returns the singleton settings row. A missing row is ErrNotFound;
// callers fall back to defaults.
func (r *settingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	query := `
		SELECT marquee_text, contact_email, instagram_url, booking_notify_addr, default_region, updated_at
		FROM site_settings
		WHERE id = 1
	`
	s := &domain.SiteSettings{}
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&s.MarqueeText, &s.ContactEmail, &s.InstagramURL, &s.BookingNotifyAddr, &s.DefaultRegion, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *settingsRepository) Save(ctx context.Context, s *domain.SiteSettings) error {
	query := `
		INSERT INTO site_settings (id, marquee_text, contact_email, instagram_url, booking_notify_addr, default_region, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			marquee_text = EXCLUDED.marquee_text,
			contact_email = EXCLUDED.contact_email,
			instagram_url = EXCLUDED.instagram_url,
			booking_notify_addr = EXCLUDED.booking_notify_addr,
			default_region = EXCLUDED.default_region,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query, s.MarqueeText, s.ContactEmail, s.InstagramURL, s.BookingNotifyAddr, s.DefaultRegion, s.UpdatedAt)
	return err
}
