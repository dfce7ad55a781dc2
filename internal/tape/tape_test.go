package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spindle-qc/spindle/internal/observables"
	"github.com/spindle-qc/spindle/internal/state"
)

func TestStartStop(t *testing.T) {
	r := NewRecorder()
	assert.False(t, r.Recording())

	require.NoError(t, r.Start())
	assert.True(t, r.Recording())

	require.NoError(t, r.Stop())
	assert.False(t, r.Recording())
}

func TestStart_AlreadyRecording(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Start())
	assert.ErrorIs(t, r.Start(), ErrAlreadyRecording)
}

func TestStop_NotRecording(t *testing.T) {
	r := NewRecorder()
	assert.ErrorIs(t, r.Stop(), ErrNotRecording)

	require.NoError(t, r.Start())
	require.NoError(t, r.Stop())
	assert.ErrorIs(t, r.Stop(), ErrNotRecording)
}

func TestAddOperation_IdleIsNoop(t *testing.T) {
	r := NewRecorder()
	r.AddOperation(state.Operation{Name: "RX", Params: []float64{0.5}, Wires: []int{0}})
	r.AddObservable(observables.Key(0), KindExpval)

	assert.Empty(t, r.Operations())
	assert.Empty(t, r.Observables())
	assert.Equal(t, 0, r.NumParams())
}

func TestRecording_AccumulatesInOrder(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Start())

	r.AddOperation(state.Operation{Name: "Hadamard", Wires: []int{0}})
	r.AddOperation(state.Operation{Name: "RX", Params: []float64{0.5}, Wires: []int{0}})
	r.AddOperation(state.Operation{Name: "Rot", Params: []float64{0.1, 0.2, 0.3}, Wires: []int{1}})
	r.AddObservable(observables.Key(2), KindExpval)
	r.AddObservable(observables.Key(5), KindVar)

	require.NoError(t, r.Stop())

	ops := r.Operations()
	require.Len(t, ops, 3)
	assert.Equal(t, "Hadamard", ops[0].Name)
	assert.Equal(t, "Rot", ops[2].Name)
	assert.Equal(t, 4, r.NumParams())

	uses := r.Observables()
	require.Len(t, uses, 2)
	assert.Equal(t, observables.Key(2), uses[0].Key)
	assert.Equal(t, KindExpval, uses[0].Kind)
	assert.Equal(t, KindVar, uses[1].Kind)
}

func TestStart_ClearsPreviousTape(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Start())
	r.AddOperation(state.Operation{Name: "PauliX", Wires: []int{0}})
	r.AddObservable(observables.Key(0), KindExpval)
	require.NoError(t, r.Stop())

	// Entries survive Stop until the next Start.
	assert.Len(t, r.Operations(), 1)

	require.NoError(t, r.Start())
	assert.Empty(t, r.Operations())
	assert.Empty(t, r.Observables())
	assert.Equal(t, 0, r.NumParams())
}

func TestInfo(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Start())
	r.AddOperation(state.Operation{Name: "RY", Params: []float64{1.2}, Wires: []int{0}})
	r.AddOperation(state.Operation{Name: "CNOT", Wires: []int{0, 1}})
	r.AddObservable(observables.Key(3), KindExpval)
	require.NoError(t, r.Stop())

	numOps, numObs, numParams, opNames, obsKeys := r.Info()
	assert.Equal(t, 2, numOps)
	assert.Equal(t, 1, numObs)
	assert.Equal(t, 1, numParams)
	assert.Equal(t, []string{"RY", "CNOT"}, opNames)
	assert.Equal(t, []observables.Key{3}, obsKeys)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Expval", KindExpval.String())
	assert.Equal(t, "Var", KindVar.String())
}
