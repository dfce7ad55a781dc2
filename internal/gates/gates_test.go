package gates

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paramsFor fills a gate's parameter slots with distinct nonzero angles.
func paramsFor(info Info) []float64 {
	p := make([]float64, info.Params)
	for i := range p {
		p[i] = 0.3 + 0.4*float64(i)
	}
	return p
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		wires  int
		params int
	}{
		{"Identity", 1, 0},
		{"Hadamard", 1, 0},
		{"T", 1, 0},
		{"RX", 1, 1},
		{"Rot", 1, 3},
		{"CNOT", 2, 0},
		{"CRZ", 2, 1},
		{"IsingYY", 2, 1},
		{"Toffoli", 3, 0},
		{"CSWAP", 3, 0},
	}

	for _, tt := range tests {
		info, err := Lookup(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.wires, info.Wires, tt.name)
		assert.Equal(t, tt.params, info.Params, tt.name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("Fredkin")
	assert.ErrorIs(t, err, ErrUnknownGate)
}

func TestMatrix_ParamArity(t *testing.T) {
	_, err := Matrix("RX", nil)
	assert.ErrorIs(t, err, ErrInvalidArity)

	_, err = Matrix("Hadamard", []float64{0.5})
	assert.ErrorIs(t, err, ErrInvalidArity)

	_, err = Matrix("Rot", []float64{0.1, 0.2})
	assert.ErrorIs(t, err, ErrInvalidArity)
}

// Every gate in the table must build a unitary: U * U^dagger = I.
func TestMatrix_AllUnitary(t *testing.T) {
	for _, name := range Names() {
		info, err := Lookup(name)
		require.NoError(t, err)

		m, err := Matrix(name, paramsFor(info))
		require.NoError(t, err, name)

		d := 1 << info.Wires
		require.Len(t, m, d*d, name)

		dag := Dagger(m, d)
		for r := 0; r < d; r++ {
			for c := 0; c < d; c++ {
				acc := complex(0, 0)
				for k := 0; k < d; k++ {
					acc += m[r*d+k] * dag[k*d+c]
				}
				want := 0.0
				if r == c {
					want = 1.0
				}
				assert.InDelta(t, want, real(acc), 1e-12, "%s [%d,%d]", name, r, c)
				assert.InDelta(t, 0.0, imag(acc), 1e-12, "%s [%d,%d]", name, r, c)
			}
		}
	}
}

func TestMatrix_KnownEntries(t *testing.T) {
	h, err := Matrix("Hadamard", nil)
	require.NoError(t, err)
	s := 1 / math.Sqrt2
	assert.InDelta(t, s, real(h[0]), 1e-12)
	assert.InDelta(t, -s, real(h[3]), 1e-12)

	// CNOT flips the target only on the control-1 block.
	cx, err := Matrix("CNOT", nil)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), cx[0*4+0])
	assert.Equal(t, complex(1, 0), cx[1*4+1])
	assert.Equal(t, complex(1, 0), cx[2*4+3])
	assert.Equal(t, complex(1, 0), cx[3*4+2])

	tg, err := Matrix("T", nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, cmplx.Phase(tg[3]), 1e-12)
}

func TestMatrix_RXAngle(t *testing.T) {
	theta := 0.7
	m, err := Matrix("RX", []float64{theta})
	require.NoError(t, err)

	assert.InDelta(t, math.Cos(theta/2), real(m[0]), 1e-12)
	assert.InDelta(t, -math.Sin(theta/2), imag(m[1]), 1e-12)
}

func TestMatrix_RotComposition(t *testing.T) {
	// Rot(phi, theta, omega) = RZ(omega) RY(theta) RZ(phi).
	phi, theta, omega := 0.3, 0.7, 1.1
	got, err := Matrix("Rot", []float64{phi, theta, omega})
	require.NoError(t, err)

	rzO, _ := Matrix("RZ", []float64{omega})
	ryT, _ := Matrix("RY", []float64{theta})
	rzP, _ := Matrix("RZ", []float64{phi})

	mul := func(a, b []complex128) []complex128 {
		out := make([]complex128, 4)
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				out[r*2+c] = a[r*2]*b[c] + a[r*2+1]*b[2+c]
			}
		}
		return out
	}
	want := mul(rzO, mul(ryT, rzP))
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-12, "entry %d", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-12, "entry %d", i)
	}
}

func TestGenerator(t *testing.T) {
	m, pre, ok := Generator("RX")
	require.True(t, ok)
	assert.Equal(t, -0.5, pre)
	assert.Equal(t, complex(1, 0), m[1], "PauliX off-diagonal")

	m, pre, ok = Generator("PhaseShift")
	require.True(t, ok)
	assert.Equal(t, 1.0, pre)
	assert.Equal(t, complex(1, 0), m[3])

	m, pre, ok = Generator("IsingZZ")
	require.True(t, ok)
	assert.Equal(t, -0.5, pre)
	require.Len(t, m, 16)
	assert.Equal(t, complex(1, 0), m[0])
	assert.Equal(t, complex(-1, 0), m[1*4+1])

	m, pre, ok = Generator("CRY")
	require.True(t, ok)
	assert.Equal(t, -0.5, pre)
	require.Len(t, m, 16)
	assert.Equal(t, complex(0, 0), m[0], "control-0 block is zero")
	assert.Equal(t, complex(0, -1), m[2*4+3])
}

func TestGenerator_None(t *testing.T) {
	_, _, ok := Generator("Rot")
	assert.False(t, ok, "multi-parameter gates have no single generator")

	_, _, ok = Generator("Hadamard")
	assert.False(t, ok)
}

// The generator must satisfy dU/dtheta = i*s*G*U. Checked numerically for
// every parameterized gate that reports one.
func TestGenerator_MatchesDerivative(t *testing.T) {
	const theta, eps = 0.9, 1e-6
	for _, name := range Names() {
		g, s, ok := Generator(name)
		if !ok {
			continue
		}
		info, err := Lookup(name)
		require.NoError(t, err)
		d := 1 << info.Wires

		plus, err := Matrix(name, []float64{theta + eps})
		require.NoError(t, err)
		minus, err := Matrix(name, []float64{theta - eps})
		require.NoError(t, err)
		u, err := Matrix(name, []float64{theta})
		require.NoError(t, err)

		for r := 0; r < d; r++ {
			for c := 0; c < d; c++ {
				num := (plus[r*d+c] - minus[r*d+c]) / complex(2*eps, 0)
				ana := complex(0, 0)
				for k := 0; k < d; k++ {
					ana += g[r*d+k] * u[k*d+c]
				}
				ana *= complex(0, s)
				assert.InDelta(t, real(ana), real(num), 1e-6, "%s [%d,%d]", name, r, c)
				assert.InDelta(t, imag(ana), imag(num), 1e-6, "%s [%d,%d]", name, r, c)
			}
		}
	}
}

func TestDagger(t *testing.T) {
	sg, err := Matrix("S", nil)
	require.NoError(t, err)
	dag := Dagger(sg, 2)
	assert.Equal(t, complex(0, -1), dag[3])
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
