// Package worker runs indexed evaluation jobs on a bounded set of goroutines.
// The optimizer uses it to score candidate swaps concurrently: each job works
// on its own copy of the build and writes its result into its own slot, so the
// caller can reduce the results without any locking.

package worker

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Prometheus metrics
var (
	jobsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mixup_candidates_evaluated_total",
		Help: "Total number of candidate swaps evaluated",
	})

	jobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mixup_candidate_batches_failed_total",
		Help: "Total number of candidate batches that returned an error",
	})

	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mixup_candidate_batch_duration_seconds",
		Help:    "Duration of one candidate evaluation batch",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	busyWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mixup_candidate_workers_busy",
		Help: "Number of workers currently evaluating a candidate",
	})
)

// JobFunc evaluates job i of a batch.
type JobFunc func(ctx context.Context, i int) error

// PoolConfig configures the worker pool
type PoolConfig struct {
	// WorkerCount bounds concurrent jobs. 1 runs jobs inline, in order.
	// Zero or less means runtime.GOMAXPROCS(0).
	WorkerCount int
	Logger      *zap.Logger
}

// Pool runs batches of indexed jobs.
type Pool struct {
	config PoolConfig
	logger *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = runtime.GOMAXPROCS(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Pool{
		config: cfg,
		logger: cfg.Logger.Sugar(),
	}
}

// Workers returns the concurrency limit.
func (p *Pool) Workers() int {
	return p.config.WorkerCount
}

// Run calls fn for every index in [0, n) and waits for all of them. The first
// error cancels the jobs that have not started yet and is returned.
func (p *Pool) Run(ctx context.Context, n int, fn JobFunc) error {
	if n <= 0 {
		return nil
	}

	start := time.Now()
	defer func() { batchDuration.Observe(time.Since(start).Seconds()) }()

	var err error
	if p.config.WorkerCount == 1 || n == 1 {
		err = p.runInline(ctx, n, fn)
	} else {
		err = p.runParallel(ctx, n, fn)
	}

	if err != nil {
		jobsFailed.Inc()
		p.logger.Warnw("Candidate batch failed", "jobs", n, "error", err)
		return err
	}
	p.logger.Debugw("Candidate batch evaluated", "jobs", n, "workers", p.config.WorkerCount, "duration", time.Since(start))
	return nil
}

func (p *Pool) runInline(ctx context.Context, n int, fn JobFunc) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.runJob(ctx, i, fn); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pool) runParallel(parent context.Context, n int, fn JobFunc) error {
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(p.config.WorkerCount)

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.runJob(ctx, i, fn)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// Jobs skipped because the caller gave up must not look like success.
	return parent.Err()
}

func (p *Pool) runJob(ctx context.Context, i int, fn JobFunc) error {
	busyWorkers.Inc()
	defer busyWorkers.Dec()

	if err := fn(ctx, i); err != nil {
		return fmt.Errorf("job %d: %w", i, err)
	}
	jobsProcessed.Inc()
	return nil
}
