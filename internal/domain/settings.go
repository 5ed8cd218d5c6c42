package domain

import (
	"context"
	"time"
)

// SiteSettings is the single site-wide settings document edited in the admin.
// It is stored in postgres and read through an explicit cache passed in by
// the caller; there is no process-wide settings singleton.
// swagger:model SiteSettings
type SiteSettings struct {
	MarqueeText       string    `json:"marquee_text"`
	ContactEmail      string    `json:"contact_email"`
	InstagramURL      string    `json:"instagram_url"`
	BookingNotifyAddr string    `json:"booking_notify_addr"`
	DefaultRegion     string    `json:"default_region"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SettingsRepository defines the interface for settings storage. Get returns
// the single row; Save upserts it.
type SettingsRepository interface {
	Get(ctx context.Context) (*SiteSettings, error)
	Save(ctx context.Context, settings *SiteSettings) error
}

// SettingsCache caches the settings document. Implementations must treat a
// miss as (nil, nil) rather than an error.
type SettingsCache interface {
	Get(ctx context.Context) (*SiteSettings, error)
	Set(ctx context.Context, settings *SiteSettings) error
	Invalidate(ctx context.Context) error
}

// SettingsService reads and writes site settings with cache maintenance.
type SettingsService interface {
	GetSettings(ctx context.Context) (*SiteSettings, error)
	UpdateSettings(ctx context.Context, settings *SiteSettings) (*SiteSettings, error)
}
