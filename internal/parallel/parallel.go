// Package parallel provides chunked goroutine fan-out for amplitude-index
// loops in the numerical kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls kernel parallelism.
type Config struct {
	Enabled bool // Whether to fan out at all.
	Workers int  // Number of worker goroutines.
	MinSpan int  // Minimum indices per goroutine to amortize overhead.
}

// DefaultConfig enables parallelism when more than one CPU is available.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled: n > 1,
		Workers: n,
		MinSpan: 1 << 10, // below ~1k amplitudes the fan-out costs more than it saves
	}
}

// For executes f(i) for i in [0, n), fanning out across cfg.Workers
// goroutines when the span is large enough, sequentially otherwise.
func For(n int, cfg Config, f func(i int)) {
	if !cfg.Enabled || n < cfg.MinSpan || cfg.Workers < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	span := (n + cfg.Workers - 1) / cfg.Workers
	if span < cfg.MinSpan {
		span = cfg.MinSpan
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += span {
		end := start + span
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
