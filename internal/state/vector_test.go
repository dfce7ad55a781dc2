package state

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New(3)
	assert.Equal(t, 3, v.NumQubits())
	assert.Equal(t, 8, v.Size())
	assert.Equal(t, complex(1, 0), v.At(0))
	for i := 1; i < v.Size(); i++ {
		assert.Equal(t, complex(0, 0), v.At(i))
	}
}

func TestNew_ZeroQubits(t *testing.T) {
	// A zero-qubit register is a single amplitude of 1.
	v := New(0)
	assert.Equal(t, 0, v.NumQubits())
	assert.Equal(t, 1, v.Size())
	assert.Equal(t, complex(1, 0), v.At(0))
}

func TestFromAmplitudes(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	v := FromAmplitudes([]complex128{s, 0, 0, s})
	assert.Equal(t, 2, v.NumQubits())
	assert.InDelta(t, 1.0, v.Norm(), 1e-12)
}

func TestClone_Independent(t *testing.T) {
	v := New(1)
	c := v.Clone()
	c.Amplitudes()[0] = 0
	c.Amplitudes()[1] = 1

	assert.Equal(t, complex(1, 0), v.At(0), "clone must not share storage")
	assert.Equal(t, complex(1, 0), c.At(1))
}

func TestInnerProduct(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	plus := FromAmplitudes([]complex128{s, s})
	minus := FromAmplitudes([]complex128{s, -s})
	zero := New(1)

	assert.InDelta(t, 1.0, real(plus.InnerProduct(plus)), 1e-12)
	assert.InDelta(t, 0.0, real(plus.InnerProduct(minus)), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, real(zero.InnerProduct(plus)), 1e-12)
}

func TestInnerProduct_ConjugatesLeft(t *testing.T) {
	v := FromAmplitudes([]complex128{complex(0, 1)})
	o := FromAmplitudes([]complex128{complex(0, 1)})
	got := v.InnerProduct(o)
	require.InDelta(t, 1.0, real(got), 1e-12)
	require.InDelta(t, 0.0, imag(got), 1e-12)
}

func TestScaleAddScaledZero(t *testing.T) {
	v := New(1)
	o := FromAmplitudes([]complex128{0, 1})

	v.AddScaled(o, complex(0, 2))
	assert.Equal(t, complex(0, 2), v.At(1))

	v.Scale(complex(0.5, 0))
	assert.Equal(t, complex(0.5, 0), v.At(0))
	assert.Equal(t, complex(0, 1), v.At(1))

	v.Zero()
	assert.InDelta(t, 0.0, v.Norm(), 1e-12)
}

func TestNorm(t *testing.T) {
	v := FromAmplitudes([]complex128{complex(3, 0), complex(0, 4)})
	assert.InDelta(t, 5.0, v.Norm(), 1e-12)
}
