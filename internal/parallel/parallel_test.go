package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSpan = 1

	var counter int64
	n := 4096

	For(n, cfg, func(_ int) {
		atomic.AddInt64(&counter, 1)
	})

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, cfg, func(_ int) {
		atomic.AddInt64(&counter, 1)
	})

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallSpan(t *testing.T) {
	// Work below MinSpan runs sequentially and must still cover every index.
	cfg := DefaultConfig()

	seen := make([]bool, cfg.MinSpan-1)
	For(len(seen), cfg, func(i int) {
		seen[i] = true
	})

	for i, ok := range seen {
		if !ok {
			t.Errorf("Missing index %d", i)
		}
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 1 << 16

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, cfg, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			})
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, cfgSeq, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			})
		}
	})
}
