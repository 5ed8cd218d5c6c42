package cache

import (
	"context"

	"nazaaralive/internal/domain"
)

type noopCache struct{}

// NewNoop returns a SettingsCache that never holds anything. Used when redis
// is not configured; every read falls through to the repository.
func NewNoop() domain.SettingsCache {
	return noopCache{}
}

func (noopCache) Get(ctx context.Context) (*domain.SiteSettings, error) { return nil, nil }

func (noopCache) Set(ctx context.Context, settings *domain.SiteSettings) error { return nil }

func (noopCache) Invalidate(ctx context.Context) error { return nil }
