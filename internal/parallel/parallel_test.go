package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 16 // force the parallel path

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("expected %d, got %d", n, counter)
	}
}

func TestForSequential(t *testing.T) {
	cfg := Sequential()

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("expected 100, got %d", counter)
	}
}

func TestForSmallFallsBackToSequential(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("expected %d, got %d", n, counter)
	}
}

func TestForRangeCoversAllIndices(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 8

	n := 1000
	seen := make([]int32, n)
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times", i, c)
		}
	}
}

func BenchmarkForRange(b *testing.B) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 1024
	n := 100000
	dst := make([]float32, n)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					dst[j] = float32(j) * 0.5
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					dst[j] = float32(j) * 0.5
				}
			}, Sequential())
		}
	})
}
