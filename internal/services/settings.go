package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nazaaralive/internal/domain"
)

type settingsService struct {
	settingsRepo   domain.SettingsRepository
	cache          domain.SettingsCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewSettingsService(settingsRepo domain.SettingsRepository, cache domain.SettingsCache, logger *slog.Logger, timeout time.Duration) domain.SettingsService {
	return &settingsService{
		settingsRepo:   settingsRepo,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// GetSettings reads through the cache. Cache failures degrade to a direct
// repository read.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("settings cache read failed", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if err := s.cache.Set(ctx, settings); err != nil {
		s.logger.Warn("settings cache write failed", "error", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	settings.UpdatedAt = time.Now()
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("settings cache invalidation failed", "error", err)
	}
	return settings, nil
}
