// Copyright 2026 Spindle Quantum Simulator. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go kernel engine for the state-vector
// device: gate application, probabilities, sampling, collapse, and the
// adjoint Jacobian, parallelized across amplitude strides.
package cpu

import (
	internalcpu "github.com/spindle-qc/spindle/internal/backend/cpu"
	"github.com/spindle-qc/spindle/internal/state"
)

// Engine is the CPU kernel engine.
type Engine = internalcpu.Engine

// Config seeds the engine's random stream and bounds its worker pool.
type Config = internalcpu.Config

// Compile-time check that Engine implements state.Engine.
var _ state.Engine = (*Engine)(nil)

// New creates an engine with a time-seeded random stream and one worker
// per CPU.
func New() *Engine {
	return internalcpu.New()
}

// NewWithConfig creates an engine with an explicit seed and worker count.
// A zero seed falls back to the clock; a zero worker count uses every CPU.
func NewWithConfig(cfg Config) *Engine {
	return internalcpu.NewWithConfig(cfg)
}
