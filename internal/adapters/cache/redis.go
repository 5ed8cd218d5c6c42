package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nazaaralive/internal/domain"
)

const (
	settingsKey = "site:settings"
	settingsTTL = 10 * time.Minute
)

type redisSettingsCache struct {
	client *redis.Client
}

// NewRedisSettingsCache returns a SettingsCache backed by redis. The
// connection is verified with a ping before returning.
func NewRedisSettingsCache(ctx context.Context, addr, password string, db int) (domain.SettingsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &redisSettingsCache{client: client}, nil
}

func (c *redisSettingsCache) Get(ctx context.Context) (*domain.SiteSettings, error) {
	raw, err := c.client.Get(ctx, settingsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings from cache: %w", err)
	}
	var settings domain.SiteSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		// Treat a corrupt entry as a miss; the next Set overwrites it.
		return nil, nil
	}
	return &settings, nil
}

func (c *redisSettingsCache) Set(ctx context.Context, settings *domain.SiteSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := c.client.Set(ctx, settingsKey, raw, settingsTTL).Err(); err != nil {
		return fmt.Errorf("failed to write settings to cache: %w", err)
	}
	return nil
}

func (c *redisSettingsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, settingsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate settings cache: %w", err)
	}
	return nil
}
