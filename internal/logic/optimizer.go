package logic

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/openmohaa/mixup/internal/models"
	"github.com/openmohaa/mixup/internal/worker"
)

// DefaultMaxSteps caps an optimization run. Every accepted step strictly lowers
// the variance, so the cap only guards against pathological tunings.
const DefaultMaxSteps = 1000

// Result is the outcome of an optimization run.
type Result struct {
	Build *models.TeamsBuild
	// Steps is the number of accepted shuffle steps.
	Steps int
	// Trace holds the initial variance followed by the variance after every
	// accepted step. It is strictly decreasing.
	Trace []float64
}

// OptimizerConfig configures an Optimizer.
type OptimizerConfig struct {
	Evaluator Evaluator
	MaxSteps  int
	Logger    *zap.Logger
}

// Optimizer lowers the variance of team strengths by local search: each step
// swaps one pair of players between the strongest and the weakest team.
type Optimizer struct {
	evaluator Evaluator
	maxSteps  int
	logger    *zap.SugaredLogger
}

func NewOptimizer(cfg OptimizerConfig) *Optimizer {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Evaluator == nil {
		cfg.Evaluator = worker.NewPool(worker.PoolConfig{WorkerCount: 1, Logger: cfg.Logger})
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	return &Optimizer{
		evaluator: cfg.Evaluator,
		maxSteps:  cfg.MaxSteps,
		logger:    cfg.Logger.Sugar(),
	}
}

// Optimize repeats shuffle steps while they strictly lower the variance and
// returns the last improving build. Builds with fewer than two teams are
// returned as they are.
func (o *Optimizer) Optimize(ctx context.Context, build *models.TeamsBuild) (*Result, error) {
	start := time.Now()
	defer func() { optimizeDuration.Observe(time.Since(start).Seconds()) }()

	current := build
	target := current.Variance()
	res := &Result{Build: current, Trace: []float64{target}}
	o.logger.Debugw("Initial target", "variance", target, "teams", len(current.Teams()))

	for res.Steps < o.maxSteps {
		next, changed, err := o.ShuffleStep(ctx, current)
		if err != nil {
			return nil, err
		}
		if !changed {
			o.logger.Debugw("No candidate swaps left", "steps", res.Steps)
			break
		}

		newTarget := next.Variance()
		o.logger.Debugw("New target", "variance", newTarget, "step", res.Steps+1)
		if newTarget >= target {
			break
		}

		current, target = next, newTarget
		res.Build = current
		res.Steps++
		res.Trace = append(res.Trace, target)
		shuffleSteps.Inc()
	}

	if res.Steps == o.maxSteps {
		o.logger.Warnw("Optimization stopped at step limit", "maxSteps", o.maxSteps, "variance", target)
	}
	return res, nil
}

// ShuffleStep applies the best swap between the strongest and the weakest team
// to a copy of the build. The best swap leaves the smallest strength gap
// between those two teams; ties go to the earliest candidate. changed is false,
// and build is returned untouched, when the build has fewer than two teams or
// no candidate exists.
func (o *Optimizer) ShuffleStep(ctx context.Context, build *models.TeamsBuild) (next *models.TeamsBuild, changed bool, err error) {
	weakest, strongest, ok := Extremes(build)
	if !ok {
		return build, false, nil
	}

	candidates := GenerateSwaps(build.Tuning(), strongest, weakest)
	if len(candidates) == 0 {
		return build, false, nil
	}

	scores := make([]float64, len(candidates))
	err = o.evaluator.Run(ctx, len(candidates), func(ctx context.Context, i int) error {
		score, err := scoreSwap(build, candidates[i], weakest.ID(), strongest.ID())
		if err != nil {
			return err
		}
		scores[i] = score
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("evaluate swaps: %w", err)
	}

	best := 0
	for i, s := range scores {
		if s < scores[best] {
			best = i
		}
	}

	next = build.Copy()
	if err := candidates[best].Apply(next); err != nil {
		return nil, false, fmt.Errorf("apply %v: %w", candidates[best], err)
	}
	return next, true, nil
}

// scoreSwap applies the swap to a private copy and measures the gap left
// between the two teams.
func scoreSwap(build *models.TeamsBuild, swap models.SwapTransaction, weakestID, strongestID int) (float64, error) {
	trial := build.Copy()
	if err := swap.Apply(trial); err != nil {
		return 0, err
	}
	weak, err := trial.Team(weakestID)
	if err != nil {
		return 0, err
	}
	strong, err := trial.Team(strongestID)
	if err != nil {
		return 0, err
	}
	return math.Abs(weak.Strength() - strong.Strength()), nil
}

// Extremes returns the weakest and the strongest team. After a stable sort by
// strength the weakest is the first team and the strongest the last one.
// ok is false with fewer than two teams.
func Extremes(build *models.TeamsBuild) (weakest, strongest *models.Team, ok bool) {
	teams := build.Teams()
	if len(teams) < 2 {
		return nil, nil, false
	}

	strengths := make(map[int]float64, len(teams))
	for _, t := range teams {
		strengths[t.ID()] = t.Strength()
	}
	sort.SliceStable(teams, func(i, j int) bool {
		return strengths[teams[i].ID()] < strengths[teams[j].ID()]
	})
	return teams[0], teams[len(teams)-1], true
}

// GenerateSwaps lists every swap that moves a stronger player of teamFrom into
// teamTo for a weaker player of teamTo on the same class.
func GenerateSwaps(tuning models.Tuning, teamFrom, teamTo *models.Team) []models.SwapTransaction {
	var out []models.SwapTransaction
	for _, from := range teamFrom.Assignments() {
		fromStrength, err := tuning.Strength(from.Player, from.Class)
		if err != nil {
			continue
		}
		for _, to := range teamTo.Assignments() {
			if to.Class != from.Class {
				continue
			}
			toStrength, err := tuning.Strength(to.Player, to.Class)
			if err != nil || fromStrength <= toStrength {
				continue
			}
			out = append(out, models.SwapTransaction{
				TeamFromID: teamFrom.ID(),
				PlayerFrom: from.Player,
				TeamToID:   teamTo.ID(),
				PlayerTo:   to.Player,
			})
		}
	}
	return out
}
