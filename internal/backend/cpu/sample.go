package cpu

import (
	"sort"

	"github.com/spindle-qc/spindle/internal/state"
)

// Sample draws shots basis states by inverse-transform sampling over the
// cumulative probability distribution and returns their bits as a
// shots x numQubits row-major 0/1 matrix.
func (e *Engine) Sample(v *state.Vector, shots uint64) []uint8 {
	n := v.NumQubits()
	out := make([]uint8, int(shots)*n)
	cum := cumulative(e.Probabilities(v))
	for s := 0; s < int(shots); s++ {
		idx := e.drawIndex(cum)
		for w := 0; w < n; w++ {
			out[s*n+w] = uint8((idx >> w) & 1)
		}
	}
	return out
}

// ExpvalShots estimates <O> from shots Monte-Carlo samples using the
// local-value estimator: draw basis index i with probability |v_i|^2 and
// average Re((Ov)_i / v_i). The estimator is unbiased for every observable
// variant and needs no eigendecomposition.
func (e *Engine) ExpvalShots(v *state.Vector, obs state.Applier, shots uint64) (float64, error) {
	applied, err := obs.ApplyTo(e, v)
	if err != nil {
		return 0, err
	}
	mean, _ := e.localEstimate(v, applied, nil, shots)
	return mean, nil
}

// VarShots estimates Var(O) from shots samples: the first and second
// moments share one sample set, with <O^2> estimated through O applied
// twice.
func (e *Engine) VarShots(v *state.Vector, obs state.Applier, shots uint64) (float64, error) {
	applied, err := obs.ApplyTo(e, v)
	if err != nil {
		return 0, err
	}
	squared, err := obs.ApplyTo(e, applied)
	if err != nil {
		return 0, err
	}
	m1, m2 := e.localEstimate(v, applied, squared, shots)
	return m2 - m1*m1, nil
}

// localEstimate averages the local values of one or two applied operators
// over a shared sample set. second may be nil.
func (e *Engine) localEstimate(v, first, second *state.Vector, shots uint64) (float64, float64) {
	if shots == 0 {
		return 0, 0
	}
	cum := cumulative(e.Probabilities(v))
	amps := v.Amplitudes()
	sum1, sum2 := 0.0, 0.0
	for s := uint64(0); s < shots; s++ {
		i := e.drawIndex(cum)
		sum1 += real(first.At(i) / amps[i])
		if second != nil {
			sum2 += real(second.At(i) / amps[i])
		}
	}
	inv := 1 / float64(shots)
	return sum1 * inv, sum2 * inv
}

// cumulative builds the running-sum distribution used by drawIndex.
func cumulative(probs []float64) []float64 {
	cum := make([]float64, len(probs))
	total := 0.0
	for i, p := range probs {
		total += p
		cum[i] = total
	}
	return cum
}

// drawIndex picks the first index whose cumulative mass exceeds a uniform
// draw, skipping zero-probability entries by construction.
func (e *Engine) drawIndex(cum []float64) int {
	u := e.rng.Float64() * cum[len(cum)-1]
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > u })
	if i == len(cum) {
		i = len(cum) - 1
	}
	return i
}
