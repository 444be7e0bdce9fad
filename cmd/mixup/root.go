package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openmohaa/mixup/internal/config"
	"github.com/openmohaa/mixup/internal/logic"
	"github.com/openmohaa/mixup/internal/worker"
)

var rootCmd = &cobra.Command{
	Use:   "mixup",
	Short: "Split a roster into balanced teams",
	Long: `Mixup reads a roster of rated players, seats them in six-player teams
under per-class limits and swaps players between the strongest and the
weakest team until the team strengths stop getting closer.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newService wires the optimizer and the worker pool. cache may be nil.
func newService(cfg *config.Config, logger *zap.Logger, cache logic.BuildCache) logic.MixupService {
	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount: cfg.WorkerCount,
		Logger:      logger,
	})
	optimizer := logic.NewOptimizer(logic.OptimizerConfig{
		Evaluator: pool,
		MaxSteps:  cfg.MaxSteps,
		Logger:    logger,
	})
	return logic.NewMixupService(logic.MixupConfig{
		Tuning:    cfg.Tuning,
		Optimizer: optimizer,
		Cache:     cache,
		Logger:    logger,
	})
}
