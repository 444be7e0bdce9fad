package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	buildsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mixup_builds_created_total",
		Help: "Total number of builds computed from a roster",
	})

	shuffleSteps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mixup_shuffle_steps_total",
		Help: "Total number of shuffle steps accepted by the optimizer",
	})

	optimizeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mixup_optimize_duration_seconds",
		Help:    "Duration of a full optimization run",
		Buckets: prometheus.DefBuckets,
	})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mixup_build_cache_lookups_total",
		Help: "Build cache lookups by result",
	}, []string{"result"})
)
