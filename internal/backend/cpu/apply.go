package cpu

import (
	"fmt"
	"sort"

	"github.com/spindle-qc/spindle/internal/gates"
	"github.com/spindle-qc/spindle/internal/parallel"
	"github.com/spindle-qc/spindle/internal/state"
)

// ApplyNamed applies a gate-table operation to v in place.
func (e *Engine) ApplyNamed(v *state.Vector, name string, wires []int, inverse bool, params []float64) error {
	info, err := gates.Lookup(name)
	if err != nil {
		return err
	}
	if len(wires) != info.Wires {
		return fmt.Errorf("%q expects %d wires, got %d: %w",
			name, info.Wires, len(wires), gates.ErrInvalidArity)
	}
	m, err := gates.Matrix(name, params)
	if err != nil {
		return err
	}
	return e.ApplyMatrix(v, m, wires, inverse)
}

// ApplyMatrix applies an explicit row-major 2^k x 2^k matrix to v in place
// on the given device wires. The first wire is the most significant bit of
// the matrix's local index; inverse applies the conjugate transpose.
func (e *Engine) ApplyMatrix(v *state.Vector, matrix []complex128, wires []int, inverse bool) error {
	k := len(wires)
	if k == 0 {
		return fmt.Errorf("no wires given: %w", state.ErrInvalidWires)
	}
	if err := checkWires(wires, v.NumQubits()); err != nil {
		return err
	}
	d := 1 << k
	if len(matrix) != d*d {
		return fmt.Errorf("matrix must have %d entries for %d wires, got %d: %w",
			d*d, k, len(matrix), gates.ErrInvalidArity)
	}
	if inverse {
		matrix = gates.Dagger(matrix, d)
	}

	n := v.NumQubits()
	amps := v.Amplitudes()

	// Precompute the global bit mask each local basis index targets.
	tmask := make([]int, d)
	for t := 0; t < d; t++ {
		mask := 0
		for j := 0; j < k; j++ {
			if t&(1<<(k-1-j)) != 0 {
				mask |= 1 << wires[j]
			}
		}
		tmask[t] = mask
	}

	sorted := append([]int(nil), wires...)
	sort.Ints(sorted)

	outer := 1 << (n - k)
	parallel.For(outer, e.pcfg, func(o int) {
		base := expandIndex(o, sorted, n)
		in := make([]complex128, d)
		for t, mask := range tmask {
			in[t] = amps[base|mask]
		}
		for r := 0; r < d; r++ {
			row := matrix[r*d : (r+1)*d]
			acc := complex(0, 0)
			for c := 0; c < d; c++ {
				acc += row[c] * in[c]
			}
			amps[base|tmask[r]] = acc
		}
	})
	return nil
}

// expandIndex spreads the bits of o across the non-wire bit positions,
// producing the base global index whose wire bits are all zero.
func expandIndex(o int, sortedWires []int, n int) int {
	base, p := 0, 0
	for b := 0; b < n; b++ {
		if p < len(sortedWires) && sortedWires[p] == b {
			p++
			continue
		}
		base |= (o & 1) << b
		o >>= 1
	}
	return base
}

// checkWires validates that wires are in range and pairwise distinct.
func checkWires(wires []int, numQubits int) error {
	seen := 0
	for _, w := range wires {
		if w < 0 || w >= numQubits {
			return fmt.Errorf("wire %d out of range [0, %d): %w", w, numQubits, state.ErrInvalidWires)
		}
		if seen&(1<<w) != 0 {
			return fmt.Errorf("wire %d repeated: %w", w, state.ErrInvalidWires)
		}
		seen |= 1 << w
	}
	return nil
}
