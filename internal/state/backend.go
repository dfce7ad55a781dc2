package state

import "errors"

// Contract errors shared by every Engine implementation.
var (
	// ErrInvalidWires signals an out-of-range, duplicated, or otherwise
	// unusable device-wire reference.
	ErrInvalidWires = errors.New("invalid wires")

	// ErrDegenerateRenorm signals that a projective collapse left zero
	// probability mass, so the post-measurement state cannot be normalized.
	ErrDegenerateRenorm = errors.New("degenerate renormalization: zero remaining probability mass")
)

// Operation describes one recorded gate application: the descriptor handed
// to the adjoint-differentiation kernel. Wires are device wires. Matrix is
// set only for explicit matrix operations (Name "MatrixOp").
type Operation struct {
	Name    string
	Params  []float64
	Wires   []int
	Inverse bool
	Matrix  []complex128
}

// Applier is a Hermitian operator that can apply itself to a state vector,
// producing O|v> as a fresh vector. Observables implement it.
type Applier interface {
	ApplyTo(eng Engine, v *Vector) (*Vector, error)
}

// Engine is the dense-linear-algebra kernel boundary. Implementations may
// parallelize internally but expose synchronous calls with no side effects
// beyond the vector they are handed.
//
// Implementations:
//   - cpu: pure Go bit-stride kernels (internal/backend/cpu)
type Engine interface {
	// ApplyNamed applies a gate from the gate table to v in place.
	ApplyNamed(v *Vector, name string, wires []int, inverse bool, params []float64) error

	// ApplyMatrix applies an explicit row-major 2^k x 2^k matrix to v in
	// place. The first wire corresponds to the most significant bit of the
	// matrix's local basis index.
	ApplyMatrix(v *Vector, matrix []complex128, wires []int, inverse bool) error

	// Probabilities returns |v_i|^2 for every basis state.
	Probabilities(v *Vector) []float64

	// MarginalProbabilities sums out every wire not listed. The first
	// listed wire contributes the lowest-order bit of the marginal index.
	MarginalProbabilities(v *Vector, wires []int) ([]float64, error)

	// Expval and Var compute exact expectation value and variance of obs.
	Expval(v *Vector, obs Applier) (float64, error)
	Var(v *Vector, obs Applier) (float64, error)

	// ExpvalShots and VarShots estimate the same quantities from shots
	// Monte-Carlo samples.
	ExpvalShots(v *Vector, obs Applier, shots uint64) (float64, error)
	VarShots(v *Vector, obs Applier, shots uint64) (float64, error)

	// Sample draws shots basis states and returns their bits as a
	// shots x numQubits row-major 0/1 matrix.
	Sample(v *Vector, shots uint64) []uint8

	// Collapse projects wire onto outcome, renormalizes, and returns the
	// post-measurement state as a fresh vector. Fails with
	// ErrDegenerateRenorm when no probability mass survives.
	Collapse(v *Vector, wire int, outcome uint8) (*Vector, error)

	// AdjointJacobian differentiates the expectation values of obs with
	// respect to the trainable parameters of the recorded operations,
	// against the current (already evolved) state. The result is row-major
	// with observables outermost: len(obs) x len(trainable) entries.
	AdjointJacobian(v *Vector, ops []Operation, obs []Applier, trainable []int) ([]float64, error)
}
