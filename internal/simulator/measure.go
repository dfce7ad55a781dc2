package simulator

import (
	"fmt"

	"github.com/spindle-qc/spindle/internal/observables"
	"github.com/spindle-qc/spindle/internal/qubits"
	"github.com/spindle-qc/spindle/internal/tape"
)

// resolveObservable validates a key against the registry.
func (s *Simulator) resolveObservable(key observables.Key) (observables.Observable, error) {
	if !s.reg.Valid(key) {
		return nil, fmt.Errorf("key %d: %w", key, ErrInvalidObservableKey)
	}
	return s.reg.Get(key)
}

// Expval computes the expectation value of an interned observable:
// analytically when the device shot count is zero, otherwise estimated from
// that many samples. The request is appended to the tape when recording.
func (s *Simulator) Expval(key observables.Key) (float64, error) {
	obs, err := s.resolveObservable(key)
	if err != nil {
		return 0, err
	}
	s.rec.AddObservable(key, tape.KindExpval)
	if s.shots > 0 {
		return s.eng.ExpvalShots(s.vec, obs, s.shots)
	}
	return s.eng.Expval(s.vec, obs)
}

// Var computes the variance of an interned observable, analytic or
// shot-estimated like Expval. The request is appended to the tape when
// recording.
func (s *Simulator) Var(key observables.Key) (float64, error) {
	obs, err := s.resolveObservable(key)
	if err != nil {
		return 0, err
	}
	s.rec.AddObservable(key, tape.KindVar)
	if s.shots > 0 {
		return s.eng.VarShots(s.vec, obs, s.shots)
	}
	return s.eng.Var(s.vec, obs)
}

// Probs fills a caller buffer of exactly 2^n entries with the full-register
// probability distribution.
func (s *Simulator) Probs(buf []float64) error {
	probs := s.eng.Probabilities(s.vec)
	if len(buf) != len(probs) {
		return fmt.Errorf("probabilities need %d entries, got %d: %w",
			len(probs), len(buf), ErrSizeMismatch)
	}
	copy(buf, probs)
	return nil
}

// PartialProbs fills a caller buffer of exactly 2^k entries with the
// marginal distribution over the given qubits. The first queried qubit
// contributes the lowest-order bit of the marginal index.
func (s *Simulator) PartialProbs(buf []float64, ids []qubits.ID) error {
	wires, err := s.observableWires(ids)
	if err != nil {
		return err
	}
	probs, err := s.eng.MarginalProbabilities(s.vec, wires)
	if err != nil {
		return err
	}
	if len(buf) != len(probs) {
		return fmt.Errorf("partial probabilities need %d entries, got %d: %w",
			len(probs), len(buf), ErrSizeMismatch)
	}
	copy(buf, probs)
	return nil
}

// Sample draws shots measurement outcomes and fills a caller buffer of
// exactly shots*n entries with 0/1 values, row-major by shot.
func (s *Simulator) Sample(buf []float64, shots uint64) error {
	n := s.mgr.Count()
	if uint64(len(buf)) != shots*uint64(n) {
		return fmt.Errorf("samples need %d entries, got %d: %w",
			shots*uint64(n), len(buf), ErrSizeMismatch)
	}
	bits := s.eng.Sample(s.vec, shots)
	for i, b := range bits {
		buf[i] = float64(b)
	}
	return nil
}

// PartialSample draws shots outcomes and gathers only the requested qubit
// columns, preserving the caller's wire order within each shot.
func (s *Simulator) PartialSample(buf []float64, ids []qubits.ID, shots uint64) error {
	wires, err := s.observableWires(ids)
	if err != nil {
		return err
	}
	if uint64(len(buf)) != shots*uint64(len(wires)) {
		return fmt.Errorf("partial samples need %d entries, got %d: %w",
			shots*uint64(len(wires)), len(buf), ErrSizeMismatch)
	}
	n := s.mgr.Count()
	bits := s.eng.Sample(s.vec, shots)
	pos := 0
	for shot := 0; shot < int(shots); shot++ {
		row := bits[shot*n : (shot+1)*n]
		for _, w := range wires {
			buf[pos] = float64(row[w])
			pos++
		}
	}
	return nil
}

// Counts draws shots outcomes and builds the full computational-basis
// histogram: eigvals holds the basis integers 0..2^n-1 (as doubles), counts
// the number of shots that landed on each. Both buffers must hold exactly
// 2^n entries.
func (s *Simulator) Counts(eigvals []float64, counts []int64, shots uint64) error {
	n := s.mgr.Count()
	size := 1 << n
	if len(eigvals) != size || len(counts) != size {
		return fmt.Errorf("counts need %d entries, got %d and %d: %w",
			size, len(eigvals), len(counts), ErrSizeMismatch)
	}
	for i := range eigvals {
		eigvals[i] = float64(i)
		counts[i] = 0
	}
	bits := s.eng.Sample(s.vec, shots)
	for shot := 0; shot < int(shots); shot++ {
		row := bits[shot*n : (shot+1)*n]
		idx := 0
		for w, b := range row {
			idx |= int(b) << w
		}
		counts[idx]++
	}
	return nil
}

// PartialCounts builds the histogram over the requested qubits only. The
// first queried qubit contributes the lowest-order bit of the basis
// integer, matching PartialProbs ordering.
func (s *Simulator) PartialCounts(eigvals []float64, counts []int64, ids []qubits.ID, shots uint64) error {
	wires, err := s.observableWires(ids)
	if err != nil {
		return err
	}
	size := 1 << len(wires)
	if len(eigvals) != size || len(counts) != size {
		return fmt.Errorf("partial counts need %d entries, got %d and %d: %w",
			size, len(eigvals), len(counts), ErrSizeMismatch)
	}
	for i := range eigvals {
		eigvals[i] = float64(i)
		counts[i] = 0
	}
	n := s.mgr.Count()
	bits := s.eng.Sample(s.vec, shots)
	for shot := 0; shot < int(shots); shot++ {
		row := bits[shot*n : (shot+1)*n]
		idx := 0
		for j, w := range wires {
			idx |= int(row[w]) << j
		}
		counts[idx]++
	}
	return nil
}

// Measure performs a single-qubit projective measurement: it draws an
// outcome from the qubit's marginal distribution, zeroes the orthogonal
// subspace, renormalizes, and replaces the state. A draw strictly greater
// than the outcome-0 mass yields One.
func (s *Simulator) Measure(id qubits.ID) (Outcome, error) {
	wire, err := s.mgr.Wire(id)
	if err != nil {
		return Zero, err
	}
	probs, err := s.eng.MarginalProbabilities(s.vec, []int{wire})
	if err != nil {
		return Zero, err
	}
	outcome := Zero
	if s.rng.Float64() > probs[0] {
		outcome = One
	}
	collapsed, err := s.eng.Collapse(s.vec, wire, uint8(outcome))
	if err != nil {
		return Zero, err
	}
	s.vec = collapsed
	return outcome, nil
}
