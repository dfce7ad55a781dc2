// Package simulator assembles the qubit register, state vector, observable
// registry, operation tape, and kernel engine into the host-facing device.
//
// A Simulator is a single mutable resource: every call is synchronous and
// the caller must serialize access when sharing an instance across
// goroutines.
package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/spindle-qc/spindle/internal/backend/cpu"
	"github.com/spindle-qc/spindle/internal/gates"
	"github.com/spindle-qc/spindle/internal/observables"
	"github.com/spindle-qc/spindle/internal/qubits"
	"github.com/spindle-qc/spindle/internal/state"
	"github.com/spindle-qc/spindle/internal/tape"
)

// Outcome is a single-qubit measurement result, returned by value.
type Outcome uint8

// The two computational-basis outcomes.
const (
	Zero Outcome = 0
	One  Outcome = 1
)

// String returns "0" or "1".
func (o Outcome) String() string {
	if o == One {
		return "1"
	}
	return "0"
}

// Simulator is the dense state-vector device.
type Simulator struct {
	mgr   *qubits.Manager
	vec   *state.Vector
	eng   state.Engine
	reg   *observables.Registry
	rec   *tape.Recorder
	shots uint64
	rng   *rand.Rand
}

// Option customizes New.
type Option func(*options)

type options struct {
	cfg Config
	eng state.Engine
}

// WithConfig applies a full device configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithShots sets the device shot count; nonzero switches Expval and Var to
// Monte-Carlo estimation.
func WithShots(shots uint64) Option {
	return func(o *options) { o.cfg.Shots = shots }
}

// WithSeed fixes the random stream.
func WithSeed(seed int64) Option {
	return func(o *options) { o.cfg.Seed = seed }
}

// WithEngine substitutes the kernel engine.
func WithEngine(eng state.Engine) Option {
	return func(o *options) { o.eng = eng }
}

// New creates a device with zero qubits.
func New(opts ...Option) *Simulator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	seed := o.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng := o.eng
	if eng == nil {
		eng = cpu.NewWithConfig(cpu.Config{Seed: seed, Workers: o.cfg.Workers})
	}
	return &Simulator{
		mgr:   qubits.NewManager(),
		vec:   state.New(0),
		eng:   eng,
		reg:   observables.NewRegistry(),
		rec:   tape.NewRecorder(),
		shots: o.cfg.Shots,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// AllocateQubit grows the register by one qubit and returns its handle.
// Growing reallocates the state to |0...0>; prior amplitudes are discarded,
// never reinterpreted as a superposition on the larger register.
func (s *Simulator) AllocateQubit() qubits.ID {
	s.vec = state.New(s.mgr.Count() + 1)
	return s.mgr.Allocate()
}

// AllocateQubits grows the register by count qubits. With count zero it
// returns an empty slice and has no side effects. See AllocateQubit for the
// state-reinitialization semantics.
func (s *Simulator) AllocateQubits(count int) []qubits.ID {
	if count == 0 {
		return nil
	}
	s.vec = state.New(s.mgr.Count() + count)
	return s.mgr.AllocateRange(count)
}

// ReleaseQubit frees a handle. Only the index mapping updates; the state
// vector keeps its size until ReleaseAllQubits resets the device.
func (s *Simulator) ReleaseQubit(id qubits.ID) error {
	return s.mgr.Release(id)
}

// ReleaseAllQubits frees every handle and resets the state to zero qubits.
func (s *Simulator) ReleaseAllQubits() {
	s.mgr.ReleaseAll()
	s.vec = state.New(0)
}

// GetNumQubits returns the current register size.
func (s *Simulator) GetNumQubits() int {
	return s.mgr.Count()
}

// SetDeviceShots sets the shot count used by Expval and Var; zero restores
// analytic computation.
func (s *Simulator) SetDeviceShots(shots uint64) {
	s.shots = shots
}

// GetDeviceShots returns the device shot count.
func (s *Simulator) GetDeviceShots() uint64 {
	return s.shots
}

// Reset returns the device to its initial condition: no qubits, an empty
// observable registry, and an idle tape. This is the only operation that
// clears the registry.
func (s *Simulator) Reset() {
	s.ReleaseAllQubits()
	s.reg.Reset()
	s.rec = tape.NewRecorder()
}

// StartTapeRecording clears the tape and begins recording operations and
// expectation-style measurements.
func (s *Simulator) StartTapeRecording() error {
	return s.rec.Start()
}

// StopTapeRecording freezes the tape for the gradient engine.
func (s *Simulator) StopTapeRecording() error {
	return s.rec.Stop()
}

// CacheManagerInfo reports the tape contents: operation count, observable
// count, parameter count, operation names, and observable keys.
func (s *Simulator) CacheManagerInfo() (numOps, numObs, numParams int, opNames []string, obsKeys []observables.Key) {
	return s.rec.Info()
}

// NamedOperation validates and applies a gate-table operation, appending it
// to the tape when recording. The state mutates before any measurement-side
// validation, so argument errors here are the caller's to rule out when
// relying on tape consistency.
func (s *Simulator) NamedOperation(name string, params []float64, ids []qubits.ID, inverse bool) error {
	info, err := gates.Lookup(name)
	if err != nil {
		return err
	}
	if len(ids) != info.Wires {
		return fmt.Errorf("%q expects %d wires, got %d: %w",
			name, info.Wires, len(ids), ErrInvalidArity)
	}
	if len(params) != info.Params {
		return fmt.Errorf("%q expects %d parameters, got %d: %w",
			name, info.Params, len(params), ErrInvalidArity)
	}
	wires, err := s.mgr.Wires(ids)
	if err != nil {
		return err
	}
	if err := s.eng.ApplyNamed(s.vec, name, wires, inverse, params); err != nil {
		return err
	}
	s.rec.AddOperation(state.Operation{
		Name:    name,
		Params:  append([]float64(nil), params...),
		Wires:   wires,
		Inverse: inverse,
	})
	return nil
}

// MatrixOperation applies an explicit unitary, appending a "MatrixOp" tape
// entry (with the matrix retained so the gradient engine can undo it).
func (s *Simulator) MatrixOperation(matrix []complex128, ids []qubits.ID, inverse bool) error {
	if len(ids) == 0 {
		return fmt.Errorf("no qubits given: %w", ErrInvalidWires)
	}
	wires, err := s.mgr.Wires(ids)
	if err != nil {
		return err
	}
	if err := s.eng.ApplyMatrix(s.vec, matrix, wires, inverse); err != nil {
		return err
	}
	s.rec.AddOperation(state.Operation{
		Name:    "MatrixOp",
		Wires:   wires,
		Inverse: inverse,
		Matrix:  append([]complex128(nil), matrix...),
	})
	return nil
}

// State copies the amplitude vector into a caller buffer of exactly 2^n
// entries.
func (s *Simulator) State(buf []complex128) error {
	if len(buf) != s.vec.Size() {
		return fmt.Errorf("state snapshot needs %d amplitudes, got %d: %w",
			s.vec.Size(), len(buf), ErrSizeMismatch)
	}
	copy(buf, s.vec.Amplitudes())
	return nil
}

// DumpState renders the amplitude vector for debugging.
func (s *Simulator) DumpState() string {
	return spew.Sdump(s.vec.Amplitudes())
}

// observableWires checks an observable wire list against the live register
// and translates it to device wires.
func (s *Simulator) observableWires(ids []qubits.ID) ([]int, error) {
	if len(ids) > s.mgr.Count() {
		return nil, fmt.Errorf("%d wires on a %d-qubit register: %w",
			len(ids), s.mgr.Count(), ErrInvalidWires)
	}
	if !s.mgr.Valid(ids...) {
		return nil, fmt.Errorf("unallocated qubit in wire list: %w", ErrInvalidWires)
	}
	return s.mgr.Wires(ids)
}

// NamedObservable interns a named observable (Identity, PauliX, PauliY,
// PauliZ, Hadamard) on the given qubits.
func (s *Simulator) NamedObservable(name string, ids []qubits.ID) (observables.Key, error) {
	wires, err := s.observableWires(ids)
	if err != nil {
		return 0, err
	}
	return s.reg.CreateNamed(name, wires)
}

// HermitianObservable interns an explicit Hermitian matrix observable.
func (s *Simulator) HermitianObservable(matrix []complex128, ids []qubits.ID) (observables.Key, error) {
	wires, err := s.observableWires(ids)
	if err != nil {
		return 0, err
	}
	return s.reg.CreateHermitian(matrix, wires)
}

// TensorObservable interns a tensor product of previously issued keys.
func (s *Simulator) TensorObservable(keys []observables.Key) (observables.Key, error) {
	return s.reg.CreateTensorProduct(keys)
}

// HamiltonianObservable interns a real linear combination of previously
// issued keys.
func (s *Simulator) HamiltonianObservable(coeffs []float64, keys []observables.Key) (observables.Key, error) {
	return s.reg.CreateHamiltonian(coeffs, keys)
}
