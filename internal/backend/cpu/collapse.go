package cpu

import (
	"fmt"
	"math"

	"github.com/spindle-qc/spindle/internal/state"
)

// Collapse projects the given wire onto outcome and renormalizes, returning
// the post-measurement state as a fresh vector.
//
// The orthogonal subspace is zeroed by stride/section index arithmetic: the
// flattened amplitude index alternates the wire's bit every stride = 2^wire
// entries, so zeroing the sections of the wrong parity removes exactly the
// amplitudes that disagree with the outcome.
func (e *Engine) Collapse(v *state.Vector, wire int, outcome uint8) (*state.Vector, error) {
	if wire < 0 || wire >= v.NumQubits() {
		return nil, fmt.Errorf("wire %d out of range [0, %d): %w",
			wire, v.NumQubits(), state.ErrInvalidWires)
	}

	out := v.Clone()
	amps := out.Amplitudes()
	stride := 1 << wire
	sections := len(amps) / stride

	// Sections of parity z carry the wrong bit value for the outcome.
	z := 1 - int(outcome)
	for sec := z; sec < sections; sec += 2 {
		base := sec * stride
		for i := 0; i < stride; i++ {
			amps[base+i] = 0
		}
	}

	total := 0.0
	for _, a := range amps {
		total += real(a)*real(a) + imag(a)*imag(a)
	}
	if total == 0 {
		return nil, state.ErrDegenerateRenorm
	}

	out.Scale(complex(1/math.Sqrt(total), 0))
	return out, nil
}
