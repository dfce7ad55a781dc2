// Package gates holds the simulator's gate table: the named operations the
// state container accepts, their wire and parameter arities, their unitary
// matrices, and the generators the adjoint engine differentiates with.
package gates

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownGate  = errors.New("operation is not supported by the gate table")
	ErrInvalidArity = errors.New("invalid number of wires or parameters")
	ErrNoGenerator  = errors.New("gate has no generator for adjoint differentiation")
)

// Info declares a gate's arity.
type Info struct {
	Wires  int
	Params int
}

// gateEntry couples arity with the matrix builder. The builder receives
// exactly Info.Params parameters.
type gateEntry struct {
	info  Info
	build func(params []float64) []complex128
}

var table = map[string]gateEntry{
	"Identity": {Info{1, 0}, func([]float64) []complex128 { return identity2() }},
	"PauliX":   {Info{1, 0}, func([]float64) []complex128 { return pauliX() }},
	"PauliY":   {Info{1, 0}, func([]float64) []complex128 { return pauliY() }},
	"PauliZ":   {Info{1, 0}, func([]float64) []complex128 { return pauliZ() }},
	"Hadamard": {Info{1, 0}, func([]float64) []complex128 { return hadamard() }},
	"S":        {Info{1, 0}, func([]float64) []complex128 { return sGate() }},
	"T":        {Info{1, 0}, func([]float64) []complex128 { return tGate() }},

	"PhaseShift": {Info{1, 1}, func(p []float64) []complex128 { return phaseShift(p[0]) }},
	"RX":         {Info{1, 1}, func(p []float64) []complex128 { return rx(p[0]) }},
	"RY":         {Info{1, 1}, func(p []float64) []complex128 { return ry(p[0]) }},
	"RZ":         {Info{1, 1}, func(p []float64) []complex128 { return rz(p[0]) }},
	"Rot":        {Info{1, 3}, func(p []float64) []complex128 { return rot(p[0], p[1], p[2]) }},

	"CNOT": {Info{2, 0}, func([]float64) []complex128 { return cnot() }},
	"CY":   {Info{2, 0}, func([]float64) []complex128 { return controlled(pauliY()) }},
	"CZ":   {Info{2, 0}, func([]float64) []complex128 { return controlled(pauliZ()) }},
	"SWAP": {Info{2, 0}, func([]float64) []complex128 { return swap() }},

	"CRX":                  {Info{2, 1}, func(p []float64) []complex128 { return controlled(rx(p[0])) }},
	"CRY":                  {Info{2, 1}, func(p []float64) []complex128 { return controlled(ry(p[0])) }},
	"CRZ":                  {Info{2, 1}, func(p []float64) []complex128 { return controlled(rz(p[0])) }},
	"ControlledPhaseShift": {Info{2, 1}, func(p []float64) []complex128 { return controlled(phaseShift(p[0])) }},
	"IsingXX":              {Info{2, 1}, func(p []float64) []complex128 { return isingXX(p[0]) }},
	"IsingYY":              {Info{2, 1}, func(p []float64) []complex128 { return isingYY(p[0]) }},
	"IsingZZ":              {Info{2, 1}, func(p []float64) []complex128 { return isingZZ(p[0]) }},

	"Toffoli": {Info{3, 0}, func([]float64) []complex128 { return toffoli() }},
	"CSWAP":   {Info{3, 0}, func([]float64) []complex128 { return cswap() }},
}

// Lookup returns the arity of a named gate.
func Lookup(name string) (Info, error) {
	entry, ok := table[name]
	if !ok {
		return Info{}, fmt.Errorf("%q: %w", name, ErrUnknownGate)
	}
	return entry.info, nil
}

// Matrix builds the row-major unitary of a named gate. The first wire of
// the gate corresponds to the most significant bit of the matrix index.
func Matrix(name string, params []float64) ([]complex128, error) {
	entry, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGate)
	}
	if len(params) != entry.info.Params {
		return nil, fmt.Errorf("%q expects %d parameters, got %d: %w",
			name, entry.info.Params, len(params), ErrInvalidArity)
	}
	return entry.build(params), nil
}

// Names returns the supported gate names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
