package worker

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func BenchmarkPoolRun(b *testing.B) {
	for _, workers := range []int{1, 4} {
		pool := NewPool(PoolConfig{WorkerCount: workers, Logger: zap.NewNop()})
		sink := make([]float64, 64)

		b.Run("workers="+string(rune('0'+workers)), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = pool.Run(context.Background(), len(sink), func(ctx context.Context, j int) error {
					sink[j] = float64(j) * 1.5
					return nil
				})
			}
		})
	}
}
