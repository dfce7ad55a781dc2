package gates

import (
	"math"
	"math/cmplx"
)

// Matrix builders. All matrices are row-major with the gate's first wire as
// the most significant bit of the local basis index, so for two-wire
// controlled gates the control is the first wire.

func identity2() []complex128 {
	return []complex128{1, 0, 0, 1}
}

func pauliX() []complex128 {
	return []complex128{0, 1, 1, 0}
}

func pauliY() []complex128 {
	return []complex128{0, -1i, 1i, 0}
}

func pauliZ() []complex128 {
	return []complex128{1, 0, 0, -1}
}

func hadamard() []complex128 {
	h := complex(1/math.Sqrt2, 0)
	return []complex128{h, h, h, -h}
}

func sGate() []complex128 {
	return []complex128{1, 0, 0, 1i}
}

func tGate() []complex128 {
	return []complex128{1, 0, 0, cmplx.Exp(complex(0, math.Pi/4))}
}

func phaseShift(phi float64) []complex128 {
	return []complex128{1, 0, 0, cmplx.Exp(complex(0, phi))}
}

func rx(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return []complex128{c, js, js, c}
}

func ry(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return []complex128{c, -s, s, c}
}

func rz(theta float64) []complex128 {
	p := cmplx.Exp(complex(0, theta/2))
	return []complex128{cmplx.Conj(p), 0, 0, p}
}

// rot is the general single-qubit rotation RZ(omega)*RY(theta)*RZ(phi).
func rot(phi, theta, omega float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return []complex128{
		cmplx.Exp(complex(0, -(phi+omega)/2)) * c, -cmplx.Exp(complex(0, (phi-omega)/2)) * s,
		cmplx.Exp(complex(0, -(phi-omega)/2)) * s, cmplx.Exp(complex(0, (phi+omega)/2)) * c,
	}
}

func cnot() []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}
}

func swap() []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}
}

// controlled embeds a 2x2 gate into the lower-right block of a 4x4 matrix:
// identity on the control-0 subspace, the gate on the control-1 subspace.
func controlled(u []complex128) []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, u[0], u[1],
		0, 0, u[2], u[3],
	}
}

func isingXX(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return []complex128{
		c, 0, 0, js,
		0, c, js, 0,
		0, js, c, 0,
		js, 0, 0, c,
	}
}

func isingYY(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, math.Sin(theta/2))
	return []complex128{
		c, 0, 0, js,
		0, c, -js, 0,
		0, -js, c, 0,
		js, 0, 0, c,
	}
}

func isingZZ(theta float64) []complex128 {
	p := cmplx.Exp(complex(0, theta/2))
	q := cmplx.Conj(p)
	return []complex128{
		q, 0, 0, 0,
		0, p, 0, 0,
		0, 0, p, 0,
		0, 0, 0, q,
	}
}

func toffoli() []complex128 {
	m := make([]complex128, 64)
	for i := 0; i < 6; i++ {
		m[i*8+i] = 1
	}
	// |110> <-> |111>
	m[6*8+7] = 1
	m[7*8+6] = 1
	return m
}

func cswap() []complex128 {
	m := make([]complex128, 64)
	for i := 0; i < 8; i++ {
		switch i {
		case 5: // |101> -> |110>
			m[5*8+6] = 1
		case 6: // |110> -> |101>
			m[6*8+5] = 1
		default:
			m[i*8+i] = 1
		}
	}
	return m
}

// Dagger returns the conjugate transpose of a row-major d x d matrix.
func Dagger(m []complex128, d int) []complex128 {
	out := make([]complex128, len(m))
	for r := 0; r < d; r++ {
		for c := 0; c < d; c++ {
			out[c*d+r] = cmplx.Conj(m[r*d+c])
		}
	}
	return out
}
