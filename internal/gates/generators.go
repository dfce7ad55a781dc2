package gates

// Generator returns the Hermitian generator G and prefactor s of a
// single-parameter gate, with dU/dtheta = i*s*G*U. The adjoint engine
// differentiates only gates that appear here; multi-parameter gates such as
// Rot have no single generator and report ok=false.
func Generator(name string) (matrix []complex128, prefactor float64, ok bool) {
	switch name {
	case "RX":
		return pauliX(), -0.5, true
	case "RY":
		return pauliY(), -0.5, true
	case "RZ":
		return pauliZ(), -0.5, true
	case "PhaseShift":
		return projector11(), 1.0, true
	case "CRX":
		return controlledGenerator(pauliX()), -0.5, true
	case "CRY":
		return controlledGenerator(pauliY()), -0.5, true
	case "CRZ":
		return controlledGenerator(pauliZ()), -0.5, true
	case "ControlledPhaseShift":
		return controlledGenerator(projector11()), 1.0, true
	case "IsingXX":
		return kron2(pauliX(), pauliX()), -0.5, true
	case "IsingYY":
		return kron2(pauliY(), pauliY()), -0.5, true
	case "IsingZZ":
		return kron2(pauliZ(), pauliZ()), -0.5, true
	}
	return nil, 0, false
}

// projector11 is |1><1|, the generator of PhaseShift.
func projector11() []complex128 {
	return []complex128{0, 0, 0, 1}
}

// controlledGenerator embeds a 2x2 generator as |1><1| (x) G: zero on the
// control-0 subspace.
func controlledGenerator(g []complex128) []complex128 {
	return []complex128{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, g[0], g[1],
		0, 0, g[2], g[3],
	}
}

// kron2 is the Kronecker product of two 2x2 matrices.
func kron2(a, b []complex128) []complex128 {
	out := make([]complex128, 16)
	for ar := 0; ar < 2; ar++ {
		for ac := 0; ac < 2; ac++ {
			for br := 0; br < 2; br++ {
				for bc := 0; bc < 2; bc++ {
					out[(ar*2+br)*4+(ac*2+bc)] = a[ar*2+ac] * b[br*2+bc]
				}
			}
		}
	}
	return out
}
