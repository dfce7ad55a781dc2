package cpu

import (
	"github.com/spindle-qc/spindle/internal/parallel"
	"github.com/spindle-qc/spindle/internal/state"
)

// Probabilities returns the squared magnitude of every amplitude.
func (e *Engine) Probabilities(v *state.Vector) []float64 {
	amps := v.Amplitudes()
	out := make([]float64, len(amps))
	parallel.For(len(amps), e.pcfg, func(i int) {
		a := amps[i]
		out[i] = real(a)*real(a) + imag(a)*imag(a)
	})
	return out
}

// MarginalProbabilities sums out every wire not listed. The first listed
// wire contributes the lowest-order bit of the marginal index, matching the
// ordering of full-register probabilities when all wires are listed in
// device order.
func (e *Engine) MarginalProbabilities(v *state.Vector, wires []int) ([]float64, error) {
	if err := checkWires(wires, v.NumQubits()); err != nil {
		return nil, err
	}
	out := make([]float64, 1<<len(wires))
	for i, a := range v.Amplitudes() {
		p := real(a)*real(a) + imag(a)*imag(a)
		key := 0
		for j, w := range wires {
			if i&(1<<w) != 0 {
				key |= 1 << j
			}
		}
		out[key] += p
	}
	return out, nil
}

// Expval computes the exact expectation value <v|O|v>.
func (e *Engine) Expval(v *state.Vector, obs state.Applier) (float64, error) {
	applied, err := obs.ApplyTo(e, v)
	if err != nil {
		return 0, err
	}
	return real(v.InnerProduct(applied)), nil
}

// Var computes the exact variance <O^2> - <O>^2 from a single application:
// for a Hermitian O, <O^2> = <Ov|Ov>.
func (e *Engine) Var(v *state.Vector, obs state.Applier) (float64, error) {
	applied, err := obs.ApplyTo(e, v)
	if err != nil {
		return 0, err
	}
	ev := real(v.InnerProduct(applied))
	m2 := real(applied.InnerProduct(applied))
	return m2 - ev*ev, nil
}
