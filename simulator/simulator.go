// Copyright 2026 Spindle Quantum Simulator. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package simulator provides the public API for the Spindle state-vector
// quantum device.
//
// The package re-exports the device surface:
//   - Simulator: the dense state-vector device
//   - Key: handle for cached observables
//   - QubitID: handle for allocated wires
//   - Outcome: single-qubit measurement result
//
// Example:
//
//	sim := simulator.New(simulator.WithSeed(42))
//	q := sim.AllocateQubits(2)
//	_ = sim.NamedOperation("Hadamard", nil, q[:1], false)
//	_ = sim.NamedOperation("CNOT", nil, q, false)
//	probs := make([]float64, 4)
//	_ = sim.Probs(probs)
package simulator

import (
	"github.com/spindle-qc/spindle/internal/observables"
	"github.com/spindle-qc/spindle/internal/qubits"
	internalsim "github.com/spindle-qc/spindle/internal/simulator"
	"github.com/spindle-qc/spindle/internal/state"
)

// Simulator is the dense state-vector device.
type Simulator = internalsim.Simulator

// Config is the device configuration, loadable from the environment.
type Config = internalsim.Config

// Option customizes New.
type Option = internalsim.Option

// QubitID identifies an allocated qubit. IDs are monotonic and never reused.
type QubitID = qubits.ID

// Key identifies a cached observable.
type Key = observables.Key

// Outcome is a single-qubit measurement result.
type Outcome = internalsim.Outcome

// The two computational-basis outcomes.
const (
	Zero Outcome = internalsim.Zero
	One  Outcome = internalsim.One
)

// Engine is the kernel interface a device delegates to.
type Engine = state.Engine

// New creates a simulator with zero qubits allocated.
func New(opts ...Option) *Simulator {
	return internalsim.New(opts...)
}

// ConfigFromEnv loads the device configuration from SPINDLE_* variables.
func ConfigFromEnv() (Config, error) {
	return internalsim.ConfigFromEnv()
}

// WithConfig applies a full device configuration.
func WithConfig(cfg Config) Option {
	return internalsim.WithConfig(cfg)
}

// WithShots sets the device shot count.
func WithShots(shots uint64) Option {
	return internalsim.WithShots(shots)
}

// WithSeed fixes the random stream.
func WithSeed(seed int64) Option {
	return internalsim.WithSeed(seed)
}

// WithEngine substitutes the kernel engine.
func WithEngine(eng Engine) Option {
	return internalsim.WithEngine(eng)
}

// Canonical error kinds of the device surface, for errors.Is.
var (
	ErrUnknownGate            = internalsim.ErrUnknownGate
	ErrInvalidArity           = internalsim.ErrInvalidArity
	ErrNoGenerator            = internalsim.ErrNoGenerator
	ErrInvalidQubit           = internalsim.ErrInvalidQubit
	ErrInvalidWires           = internalsim.ErrInvalidWires
	ErrInvalidObservableKey   = internalsim.ErrInvalidObservableKey
	ErrAlreadyRecording       = internalsim.ErrAlreadyRecording
	ErrNotRecording           = internalsim.ErrNotRecording
	ErrDegenerateRenorm       = internalsim.ErrDegenerateRenorm
	ErrSizeMismatch           = internalsim.ErrSizeMismatch
	ErrUnsupportedMeasurement = internalsim.ErrUnsupportedMeasurement
)
