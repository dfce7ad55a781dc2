// Copyright 2026 Spindle Quantum Simulator. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gates exposes the named-gate catalog: arity lookup, matrix
// construction, and the generators used by adjoint differentiation.
package gates

import (
	internalgates "github.com/spindle-qc/spindle/internal/gates"
)

// Info describes a gate's wire and parameter arity.
type Info = internalgates.Info

// Errors reported by the catalog.
var (
	ErrUnknownGate  = internalgates.ErrUnknownGate
	ErrInvalidArity = internalgates.ErrInvalidArity
	ErrNoGenerator  = internalgates.ErrNoGenerator
)

// Lookup returns the arity of a named gate.
func Lookup(name string) (Info, error) {
	return internalgates.Lookup(name)
}

// Matrix builds the row-major unitary for a named gate.
func Matrix(name string, params []float64) ([]complex128, error) {
	return internalgates.Matrix(name, params)
}

// Generator returns the Hermitian generator and prefactor of a
// single-parameter gate, with ok false when the gate has none.
func Generator(name string) (matrix []complex128, prefactor float64, ok bool) {
	return internalgates.Generator(name)
}

// Dagger returns the conjugate transpose of a row-major d by d matrix.
func Dagger(m []complex128, d int) []complex128 {
	return internalgates.Dagger(m, d)
}

// Names lists the catalog in sorted order.
func Names() []string {
	return internalgates.Names()
}
