// Package cpu implements the dense-linear-algebra kernel engine in pure Go:
// gate application via bit-stride index arithmetic, inverse-transform
// sampling, projective collapse, and the adjoint Jacobian.
package cpu

import (
	"math/rand"
	"time"

	"github.com/spindle-qc/spindle/internal/parallel"
	"github.com/spindle-qc/spindle/internal/state"
)

// Config tunes the engine. Zero values select defaults: a time-based seed
// and one worker per CPU.
type Config struct {
	Seed    int64
	Workers int
}

// Engine is the CPU implementation of state.Engine.
type Engine struct {
	pcfg parallel.Config
	rng  *rand.Rand
}

var _ state.Engine = (*Engine)(nil)

// New creates an engine with default configuration.
func New() *Engine {
	return NewWithConfig(Config{})
}

// NewWithConfig creates an engine with explicit seed and worker count.
func NewWithConfig(cfg Config) *Engine {
	pcfg := parallel.DefaultConfig()
	if cfg.Workers > 0 {
		pcfg.Workers = cfg.Workers
		pcfg.Enabled = cfg.Workers > 1
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		pcfg: pcfg,
		rng:  rand.New(rand.NewSource(seed)),
	}
}
