package state

import (
	"math"
	"math/cmplx"
)

// Vector is the dense state of an n-qubit register: 2^n complex amplitudes.
// A register with zero qubits holds a single amplitude of 1.
//
// The vector is exclusively owned by the simulator that created it. It is
// replaced wholesale (never resized in place) on qubit-count changes and on
// projective collapse.
type Vector struct {
	amps      []complex128
	numQubits int
}

// New creates the |0...0> state on n qubits.
func New(n int) *Vector {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &Vector{amps: amps, numQubits: n}
}

// FromAmplitudes wraps an amplitude slice as a state vector. The slice
// length must be a power of two; ownership transfers to the vector.
func FromAmplitudes(amps []complex128) *Vector {
	n := 0
	for 1<<n < len(amps) {
		n++
	}
	return &Vector{amps: amps, numQubits: n}
}

// NumQubits returns the register size n.
func (v *Vector) NumQubits() int {
	return v.numQubits
}

// Size returns the number of amplitudes, 2^n.
func (v *Vector) Size() int {
	return len(v.amps)
}

// Amplitudes returns the underlying amplitude slice. Callers must not
// retain it across operations that replace the vector.
func (v *Vector) Amplitudes() []complex128 {
	return v.amps
}

// At returns the amplitude of basis state i.
func (v *Vector) At(i int) complex128 {
	return v.amps[i]
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	amps := make([]complex128, len(v.amps))
	copy(amps, v.amps)
	return &Vector{amps: amps, numQubits: v.numQubits}
}

// Norm returns the l2 norm of the amplitude vector; 1 for a normalized state.
func (v *Vector) Norm() float64 {
	total := 0.0
	for _, a := range v.amps {
		total += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(total)
}

// InnerProduct computes <v|o> = sum_i conj(v_i)*o_i.
func (v *Vector) InnerProduct(o *Vector) complex128 {
	acc := complex(0, 0)
	for i, a := range v.amps {
		acc += cmplx.Conj(a) * o.amps[i]
	}
	return acc
}

// Scale multiplies every amplitude by c in place.
func (v *Vector) Scale(c complex128) {
	for i := range v.amps {
		v.amps[i] *= c
	}
}

// AddScaled accumulates c*o into v in place. Both vectors must have the
// same size.
func (v *Vector) AddScaled(o *Vector, c complex128) {
	for i := range v.amps {
		v.amps[i] += c * o.amps[i]
	}
}

// Zero sets every amplitude to zero in place.
func (v *Vector) Zero() {
	for i := range v.amps {
		v.amps[i] = 0
	}
}
