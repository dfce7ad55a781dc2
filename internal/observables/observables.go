// Package observables interns the Hermitian observables a measurement can
// reference: named single-qubit operators, explicit Hermitian matrices,
// tensor products, and Hamiltonians. Observables are referenced by opaque
// keys that issue monotonically and are validated before every use.
package observables

import (
	"errors"
	"fmt"

	"github.com/spindle-qc/spindle/internal/gates"
	"github.com/spindle-qc/spindle/internal/state"
)

var (
	ErrInvalidKey   = errors.New("invalid key for cached observables")
	ErrSizeMismatch = errors.New("observable shape mismatch")
	ErrNotHermitian = errors.New("named observable is not Hermitian")
)

// Key identifies an interned observable.
type Key int64

// Observable is the uniform capability every variant exposes: applying
// itself to a state vector. Expectation values and variances derive from
// the applied vector, so no variant needs its own measurement code.
type Observable interface {
	state.Applier
	fmt.Stringer
}

// namedHermitian lists the gate-table operators usable as named
// observables; each is its own inverse up to a real spectrum.
var namedHermitian = map[string]bool{
	"Identity": true,
	"PauliX":   true,
	"PauliY":   true,
	"PauliZ":   true,
	"Hadamard": true,
}

// Named is a single gate-table operator on specific device wires.
type Named struct {
	Gate  string
	Wires []int
}

func (n Named) ApplyTo(eng state.Engine, v *state.Vector) (*state.Vector, error) {
	out := v.Clone()
	if err := eng.ApplyNamed(out, n.Gate, n.Wires, false, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (n Named) String() string {
	return fmt.Sprintf("%s%v", n.Gate, n.Wires)
}

// Hermitian is an explicit matrix observable on specific device wires.
type Hermitian struct {
	Matrix []complex128
	Wires  []int
}

func (h Hermitian) ApplyTo(eng state.Engine, v *state.Vector) (*state.Vector, error) {
	out := v.Clone()
	if err := eng.ApplyMatrix(out, h.Matrix, h.Wires, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (h Hermitian) String() string {
	return fmt.Sprintf("Hermitian%v", h.Wires)
}

// TensorProduct composes factor observables acting on disjoint wires.
type TensorProduct struct {
	Factors []Observable
}

func (t TensorProduct) ApplyTo(eng state.Engine, v *state.Vector) (*state.Vector, error) {
	out := v.Clone()
	for _, f := range t.Factors {
		next, err := f.ApplyTo(eng, out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

func (t TensorProduct) String() string {
	s := "Tensor("
	for i, f := range t.Factors {
		if i > 0 {
			s += " @ "
		}
		s += f.String()
	}
	return s + ")"
}

// Hamiltonian is a real linear combination of term observables.
type Hamiltonian struct {
	Coeffs []float64
	Terms  []Observable
}

func (h Hamiltonian) ApplyTo(eng state.Engine, v *state.Vector) (*state.Vector, error) {
	acc := state.New(v.NumQubits())
	acc.Zero()
	for i, term := range h.Terms {
		applied, err := term.ApplyTo(eng, v)
		if err != nil {
			return nil, err
		}
		acc.AddScaled(applied, complex(h.Coeffs[i], 0))
	}
	return acc, nil
}

func (h Hamiltonian) String() string {
	return fmt.Sprintf("Hamiltonian(%d terms)", len(h.Terms))
}

// Registry interns observables by key. It persists across tape recording
// boundaries and clears only on explicit reset.
type Registry struct {
	obs []Observable
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// CreateNamed interns a named observable after checking the name is a
// known Hermitian gate-table operator with matching wire arity.
func (r *Registry) CreateNamed(gate string, wires []int) (Key, error) {
	if !namedHermitian[gate] {
		return 0, fmt.Errorf("%q: %w", gate, ErrNotHermitian)
	}
	info, err := gates.Lookup(gate)
	if err != nil {
		return 0, err
	}
	if len(wires) != info.Wires {
		return 0, fmt.Errorf("%q expects %d wires, got %d: %w",
			gate, info.Wires, len(wires), gates.ErrInvalidArity)
	}
	return r.intern(Named{Gate: gate, Wires: wires}), nil
}

// CreateHermitian interns an explicit matrix observable. The matrix must be
// square of dimension 2^len(wires).
func (r *Registry) CreateHermitian(matrix []complex128, wires []int) (Key, error) {
	d := 1 << len(wires)
	if len(matrix) != d*d {
		return 0, fmt.Errorf("hermitian matrix must have %d entries, got %d: %w",
			d*d, len(matrix), ErrSizeMismatch)
	}
	m := make([]complex128, len(matrix))
	copy(m, matrix)
	w := make([]int, len(wires))
	copy(w, wires)
	return r.intern(Hermitian{Matrix: m, Wires: w}), nil
}

// CreateTensorProduct interns a tensor product of previously issued keys.
func (r *Registry) CreateTensorProduct(keys []Key) (Key, error) {
	factors, err := r.resolve(keys)
	if err != nil {
		return 0, err
	}
	return r.intern(TensorProduct{Factors: factors}), nil
}

// CreateHamiltonian interns a linear combination of previously issued keys.
func (r *Registry) CreateHamiltonian(coeffs []float64, keys []Key) (Key, error) {
	if len(coeffs) != len(keys) {
		return 0, fmt.Errorf("%d coefficients for %d terms: %w",
			len(coeffs), len(keys), ErrSizeMismatch)
	}
	terms, err := r.resolve(keys)
	if err != nil {
		return 0, err
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return r.intern(Hamiltonian{Coeffs: c, Terms: terms}), nil
}

// Get resolves a key.
func (r *Registry) Get(key Key) (Observable, error) {
	if key < 0 || int(key) >= len(r.obs) {
		return nil, fmt.Errorf("key %d: %w", key, ErrInvalidKey)
	}
	return r.obs[key], nil
}

// Valid reports whether every key has been issued by this registry.
func (r *Registry) Valid(keys ...Key) bool {
	for _, key := range keys {
		if key < 0 || int(key) >= len(r.obs) {
			return false
		}
	}
	return true
}

// Size returns the number of interned observables.
func (r *Registry) Size() int {
	return len(r.obs)
}

// Reset discards every interned observable and invalidates all keys.
func (r *Registry) Reset() {
	r.obs = r.obs[:0]
}

func (r *Registry) intern(o Observable) Key {
	r.obs = append(r.obs, o)
	return Key(len(r.obs) - 1)
}

func (r *Registry) resolve(keys []Key) ([]Observable, error) {
	out := make([]Observable, len(keys))
	for i, key := range keys {
		o, err := r.Get(key)
		if err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}
