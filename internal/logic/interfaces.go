package logic

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openmohaa/mixup/internal/models"
	"github.com/openmohaa/mixup/internal/worker"
)

// Evaluator runs indexed candidate evaluations; *worker.Pool implements it.
type Evaluator interface {
	Run(ctx context.Context, n int, fn worker.JobFunc) error
}

// RedisClient defines the subset of the Redis client used by the build cache
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// BuildCache stores finished builds by roster digest.
type BuildCache interface {
	Get(ctx context.Context, key string) (*models.BuildView, bool, error)
	Put(ctx context.Context, key string, view *models.BuildView) error
}

// MixupService turns a roster into balanced teams.
type MixupService interface {
	// MakeTeams builds the initial teams and optimizes them.
	MakeTeams(ctx context.Context, players []models.PlayerInfo) (*Result, error)
	// CreateBuild runs MakeTeams and returns the presentation view, served from
	// the cache when the same roster was built before.
	CreateBuild(ctx context.Context, players []models.PlayerInfo) (*models.BuildView, error)
}
