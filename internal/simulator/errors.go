package simulator

import (
	"errors"

	"github.com/spindle-qc/spindle/internal/gates"
	"github.com/spindle-qc/spindle/internal/observables"
	"github.com/spindle-qc/spindle/internal/qubits"
	"github.com/spindle-qc/spindle/internal/state"
	"github.com/spindle-qc/spindle/internal/tape"
)

// The canonical error kinds of the device surface. Most originate in the
// component packages and are re-exported here so callers can match with
// errors.Is against a single set.
var (
	ErrUnknownGate          = gates.ErrUnknownGate
	ErrInvalidArity         = gates.ErrInvalidArity
	ErrNoGenerator          = gates.ErrNoGenerator
	ErrInvalidQubit         = qubits.ErrInvalidQubit
	ErrInvalidWires         = state.ErrInvalidWires
	ErrInvalidObservableKey = observables.ErrInvalidKey
	ErrAlreadyRecording     = tape.ErrAlreadyRecording
	ErrNotRecording         = tape.ErrNotRecording
	ErrDegenerateRenorm     = state.ErrDegenerateRenorm

	// ErrSizeMismatch signals a caller-preallocated output buffer whose
	// length differs from the expected size. Buffers are never truncated
	// or grown silently.
	ErrSizeMismatch = errors.New("invalid size for the pre-allocated buffer")

	// ErrUnsupportedMeasurement signals a recorded measurement the adjoint
	// engine cannot differentiate.
	ErrUnsupportedMeasurement = errors.New(
		"unsupported measurements to compute gradient; adjoint differentiation method only supports expectation return type")
)
