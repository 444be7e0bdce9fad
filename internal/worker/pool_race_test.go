package worker

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

// Each job owns its slot, so concurrent writes need no lock. Run with -race.
func TestPool_SlotWritesRace(t *testing.T) {
	pool := NewPool(PoolConfig{WorkerCount: 8, Logger: zap.NewNop()})

	const n = 1000
	results := make([]int, n)
	for round := 0; round < 5; round++ {
		err := pool.Run(context.Background(), n, func(ctx context.Context, i int) error {
			results[i] = i * i
			return nil
		})
		if err != nil {
			t.Fatalf("Run error = %v", err)
		}
	}

	for i, v := range results {
		if v != i*i {
			t.Fatalf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}
