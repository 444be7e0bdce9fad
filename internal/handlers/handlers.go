package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/openmohaa/mixup/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// Pinger is implemented by *redis.Client.
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	Mixup logic.MixupService
	// Redis is optional; when set, readiness depends on it.
	Redis       Pinger
	Logger      *zap.Logger
	MaxBodySize int64
}

type Handler struct {
	mixup       logic.MixupService
	redis       Pinger
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	maxBodySize int64
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = MaxBodySize
	}
	return &Handler{
		mixup:       cfg.Mixup,
		redis:       cfg.Redis,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		maxBodySize: cfg.MaxBodySize,
	}
}
