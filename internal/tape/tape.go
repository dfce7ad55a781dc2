// Package tape records the ordered sequence of applied operations and
// requested expectation-style measurements while recording is active, for
// later replay by the adjoint differentiation engine.
package tape

import (
	"errors"

	"github.com/spindle-qc/spindle/internal/observables"
	"github.com/spindle-qc/spindle/internal/state"
)

var (
	ErrAlreadyRecording = errors.New("cannot re-activate the cache manager")
	ErrNotRecording     = errors.New("cannot stop an already stopped cache manager")
)

// Kind distinguishes the measurement that referenced an observable.
type Kind int

const (
	KindExpval Kind = iota
	KindVar
)

// String returns the measurement kind name.
func (k Kind) String() string {
	if k == KindVar {
		return "Var"
	}
	return "Expval"
}

// ObservableUse is one recorded measurement request.
type ObservableUse struct {
	Key  observables.Key
	Kind Kind
}

// Recorder is the cache manager: an append-only operation tape with a
// strict Idle/Recording state machine. Entries clear on Start, freeze on
// Stop, and survive until the next Start.
type Recorder struct {
	recording bool
	ops       []state.Operation
	obs       []ObservableUse
	numParams int
}

// NewRecorder returns an idle recorder with no entries.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start clears all entries and begins recording. It fails if the recorder
// is already recording.
func (r *Recorder) Start() error {
	if r.recording {
		return ErrAlreadyRecording
	}
	r.recording = true
	r.ops = r.ops[:0]
	r.obs = r.obs[:0]
	r.numParams = 0
	return nil
}

// Stop freezes the tape. It fails if the recorder is idle.
func (r *Recorder) Stop() error {
	if !r.recording {
		return ErrNotRecording
	}
	r.recording = false
	return nil
}

// Recording reports the state-machine position.
func (r *Recorder) Recording() bool {
	return r.recording
}

// AddOperation appends an operation entry if recording is active.
func (r *Recorder) AddOperation(op state.Operation) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
	r.numParams += len(op.Params)
}

// AddObservable appends a measurement entry if recording is active.
func (r *Recorder) AddObservable(key observables.Key, kind Kind) {
	if !r.recording {
		return
	}
	r.obs = append(r.obs, ObservableUse{Key: key, Kind: kind})
}

// Operations returns the recorded operation entries in order.
func (r *Recorder) Operations() []state.Operation {
	return r.ops
}

// Observables returns the recorded measurement entries in order.
func (r *Recorder) Observables() []ObservableUse {
	return r.obs
}

// NumParams returns the total parameter count across recorded operations.
func (r *Recorder) NumParams() int {
	return r.numParams
}

// Info summarizes the last completed or in-progress recording: operation
// count, observable count, parameter count, operation names, and
// observable keys. Valid in either state.
func (r *Recorder) Info() (numOps, numObs, numParams int, opNames []string, obsKeys []observables.Key) {
	opNames = make([]string, len(r.ops))
	for i, op := range r.ops {
		opNames[i] = op.Name
	}
	obsKeys = make([]observables.Key, len(r.obs))
	for i, use := range r.obs {
		obsKeys[i] = use.Key
	}
	return len(r.ops), len(r.obs), r.numParams, opNames, obsKeys
}
