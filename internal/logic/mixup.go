package logic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openmohaa/mixup/internal/models"
)

// MixupConfig configures the mixup service.
type MixupConfig struct {
	// Tuning defaults to models.DefaultTuning() when left zero.
	Tuning    models.Tuning
	Optimizer *Optimizer
	// Cache is optional.
	Cache  BuildCache
	Logger *zap.Logger
}

type mixupService struct {
	tuning    models.Tuning
	optimizer *Optimizer
	cache     BuildCache
	logger    *zap.SugaredLogger
}

func NewMixupService(cfg MixupConfig) MixupService {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Optimizer == nil {
		cfg.Optimizer = NewOptimizer(OptimizerConfig{Logger: cfg.Logger})
	}
	if cfg.Tuning == (models.Tuning{}) {
		cfg.Tuning = models.DefaultTuning()
	}
	return &mixupService{
		tuning:    cfg.Tuning,
		optimizer: cfg.Optimizer,
		cache:     cfg.Cache,
		logger:    cfg.Logger.Sugar(),
	}
}

func (s *mixupService) MakeTeams(ctx context.Context, players []models.PlayerInfo) (*Result, error) {
	initial, err := MakeInitial(players, s.tuning)
	if err != nil {
		return nil, fmt.Errorf("initial build: %w", err)
	}

	frac, remaining := initial.UtilizationInfo()
	s.logger.Infow("Initial build ready",
		"players", len(players),
		"teams", len(initial.Teams()),
		"placed", frac,
		"remaining", remaining,
	)

	res, err := s.optimizer.Optimize(ctx, initial)
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}
	buildsCreated.Inc()

	_, _, variance := res.Build.StrengthInfo()
	s.logger.Infow("Build optimized", "steps", res.Steps, "variance", variance)
	return res, nil
}

func (s *mixupService) CreateBuild(ctx context.Context, players []models.PlayerInfo) (*models.BuildView, error) {
	key := RosterDigest(players, s.tuning)

	if s.cache != nil {
		view, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			cacheLookups.WithLabelValues("error").Inc()
			s.logger.Warnw("Build cache lookup failed", "key", key, "error", err)
		case ok:
			cacheLookups.WithLabelValues("hit").Inc()
			return view, nil
		default:
			cacheLookups.WithLabelValues("miss").Inc()
		}
	}

	res, err := s.MakeTeams(ctx, players)
	if err != nil {
		return nil, err
	}

	view := models.NewBuildView(uuid.New().String(), res.Build)
	view.Steps = res.Steps
	view.Trace = res.Trace

	if s.cache != nil {
		if err := s.cache.Put(ctx, key, &view); err != nil {
			s.logger.Warnw("Failed to cache build", "key", key, "error", err)
		}
	}
	return &view, nil
}

// RosterDigest identifies a roster and tuning. Roster order is part of the
// digest because it breaks placement ties.
func RosterDigest(players []models.PlayerInfo, tuning models.Tuning) string {
	h := sha256.New()
	fmt.Fprintf(h, "%v\n", tuning)
	for _, p := range players {
		fmt.Fprintf(h, "%s\x00%s\x00%v\n", p.Nickname(), p.Skill(), p.Classes())
	}
	return hex.EncodeToString(h.Sum(nil))
}
