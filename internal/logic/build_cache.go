package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openmohaa/mixup/internal/models"
)

const buildCachePrefix = "mixup:build:"

type redisBuildCache struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisBuildCache stores build views as JSON under a TTL.
func NewRedisBuildCache(client RedisClient, ttl time.Duration) BuildCache {
	return &redisBuildCache{client: client, ttl: ttl}
}

func (c *redisBuildCache) Get(ctx context.Context, key string) (*models.BuildView, bool, error) {
	raw, err := c.client.Get(ctx, buildCachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var view models.BuildView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false, fmt.Errorf("decode cached build: %w", err)
	}
	return &view, true, nil
}

func (c *redisBuildCache) Put(ctx context.Context, key string, view *models.BuildView) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encode build: %w", err)
	}
	if err := c.client.Set(ctx, buildCachePrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
