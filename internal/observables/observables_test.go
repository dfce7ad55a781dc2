package observables

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spindle-qc/spindle/internal/backend/cpu"
	"github.com/spindle-qc/spindle/internal/gates"
	"github.com/spindle-qc/spindle/internal/state"
)

func TestCreateNamed(t *testing.T) {
	r := NewRegistry()
	key, err := r.CreateNamed("PauliZ", []int{0})
	require.NoError(t, err)
	assert.True(t, r.Valid(key))

	o, err := r.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "PauliZ[0]", o.String())
}

func TestCreateNamed_NotHermitian(t *testing.T) {
	r := NewRegistry()
	_, err := r.CreateNamed("S", []int{0})
	assert.ErrorIs(t, err, ErrNotHermitian)

	_, err = r.CreateNamed("NoSuchGate", []int{0})
	assert.ErrorIs(t, err, ErrNotHermitian)
}

func TestCreateNamed_WireArity(t *testing.T) {
	r := NewRegistry()
	_, err := r.CreateNamed("PauliX", []int{0, 1})
	assert.ErrorIs(t, err, gates.ErrInvalidArity)
}

func TestCreateHermitian_SizeCheck(t *testing.T) {
	r := NewRegistry()
	_, err := r.CreateHermitian([]complex128{1, 0, 0}, []int{0})
	assert.ErrorIs(t, err, ErrSizeMismatch)

	key, err := r.CreateHermitian([]complex128{1, 0, 0, -1}, []int{0})
	require.NoError(t, err)
	assert.True(t, r.Valid(key))
}

func TestCreateHermitian_CopiesInputs(t *testing.T) {
	r := NewRegistry()
	m := []complex128{1, 0, 0, -1}
	key, err := r.CreateHermitian(m, []int{0})
	require.NoError(t, err)

	m[0] = 99
	o, err := r.Get(key)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), o.(Hermitian).Matrix[0])
}

func TestCreateTensorProduct_UnknownKey(t *testing.T) {
	r := NewRegistry()
	_, err := r.CreateTensorProduct([]Key{Key(4)})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestCreateHamiltonian_CoeffCount(t *testing.T) {
	r := NewRegistry()
	z, err := r.CreateNamed("PauliZ", []int{0})
	require.NoError(t, err)

	_, err = r.CreateHamiltonian([]float64{0.5, 0.5}, []Key{z})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestKeysMonotonic(t *testing.T) {
	r := NewRegistry()
	a, err := r.CreateNamed("PauliX", []int{0})
	require.NoError(t, err)
	b, err := r.CreateNamed("PauliY", []int{0})
	require.NoError(t, err)

	assert.Equal(t, Key(0), a)
	assert.Equal(t, Key(1), b)
	assert.Equal(t, 2, r.Size())
}

func TestReset_InvalidatesKeys(t *testing.T) {
	r := NewRegistry()
	key, err := r.CreateNamed("PauliZ", []int{0})
	require.NoError(t, err)

	r.Reset()
	assert.False(t, r.Valid(key))
	_, err = r.Get(key)
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Equal(t, 0, r.Size())
}

func TestNamed_ApplyTo(t *testing.T) {
	eng := cpu.New()
	v := state.New(1)

	o := Named{Gate: "PauliX", Wires: []int{0}}
	applied, err := o.ApplyTo(eng, v)
	require.NoError(t, err)

	assert.Equal(t, complex(0, 0), applied.At(0))
	assert.Equal(t, complex(1, 0), applied.At(1))
	assert.Equal(t, complex(1, 0), v.At(0), "input state must be untouched")
}

func TestTensorProduct_ApplyTo(t *testing.T) {
	eng := cpu.New()
	v := state.New(2)

	// X on wire 0 and X on wire 1 sends |00> to |11>.
	tp := TensorProduct{Factors: []Observable{
		Named{Gate: "PauliX", Wires: []int{0}},
		Named{Gate: "PauliX", Wires: []int{1}},
	}}
	applied, err := tp.ApplyTo(eng, v)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), applied.At(3))
}

func TestHamiltonian_ApplyTo(t *testing.T) {
	eng := cpu.New()

	// (0.5*Z + 2*X)|0> = 0.5|0> + 2|1>.
	h := Hamiltonian{
		Coeffs: []float64{0.5, 2},
		Terms: []Observable{
			Named{Gate: "PauliZ", Wires: []int{0}},
			Named{Gate: "PauliX", Wires: []int{0}},
		},
	}
	applied, err := h.ApplyTo(eng, state.New(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, real(applied.At(0)), 1e-12)
	assert.InDelta(t, 2.0, real(applied.At(1)), 1e-12)
}

func TestHermitian_ApplyTo(t *testing.T) {
	eng := cpu.New()
	s := complex(1/math.Sqrt2, 0)
	plus := state.FromAmplitudes([]complex128{s, s})

	// Z|+> = |->.
	h := Hermitian{Matrix: []complex128{1, 0, 0, -1}, Wires: []int{0}}
	applied, err := h.ApplyTo(eng, plus)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt2, real(applied.At(0)), 1e-12)
	assert.InDelta(t, -1/math.Sqrt2, real(applied.At(1)), 1e-12)
}
