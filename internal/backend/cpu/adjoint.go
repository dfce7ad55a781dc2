package cpu

import (
	"fmt"

	"github.com/spindle-qc/spindle/internal/gates"
	"github.com/spindle-qc/spindle/internal/state"
)

// AdjointJacobian computes d<O_i>/dtheta_j for every observable i and
// trainable parameter j by a single backward pass over the recorded
// operations, against the current state. The operations are not replayed;
// v must already reflect their effect.
//
// Walking the tape in reverse with lambda the running ket and H_i the
// back-evolved observable kets, each trainable gate U(theta) with
// dU/dtheta = i*s*G*U contributes -2*s*Im<H_i|G*lambda>, after which the
// gate is undone on lambda and every H_i.
//
// The returned Jacobian is row-major, observables outermost:
// jac[i*len(trainable)+j].
func (e *Engine) AdjointJacobian(v *state.Vector, ops []state.Operation, obs []state.Applier, trainable []int) ([]float64, error) {
	numTrain := len(trainable)
	jac := make([]float64, len(obs)*numTrain)
	if len(jac) == 0 {
		return jac, nil
	}

	col := make(map[int]int, numTrain)
	for c, paramIdx := range trainable {
		col[paramIdx] = c
	}

	lambda := v.Clone()
	bras := make([]*state.Vector, len(obs))
	for i, o := range obs {
		applied, err := o.ApplyTo(e, lambda)
		if err != nil {
			return nil, err
		}
		bras[i] = applied
	}

	paramIdx := 0
	for _, op := range ops {
		paramIdx += len(op.Params)
	}

	for k := len(ops) - 1; k >= 0; k-- {
		op := ops[k]
		paramIdx -= len(op.Params)

		if c, ok := trainableColumn(op, paramIdx, col); ok {
			if len(op.Params) > 1 {
				return nil, fmt.Errorf("%q: %w", op.Name, gates.ErrNoGenerator)
			}
			gen, prefactor, genOK := gates.Generator(op.Name)
			if !genOK {
				return nil, fmt.Errorf("%q: %w", op.Name, gates.ErrNoGenerator)
			}
			if op.Inverse {
				prefactor = -prefactor
			}

			mu := lambda.Clone()
			if err := e.ApplyMatrix(mu, gen, op.Wires, false); err != nil {
				return nil, err
			}
			for i := range bras {
				jac[i*numTrain+c] = -2 * prefactor * imag(bras[i].InnerProduct(mu))
			}
		}

		if err := e.undo(lambda, op); err != nil {
			return nil, err
		}
		for i := range bras {
			if err := e.undo(bras[i], op); err != nil {
				return nil, err
			}
		}
	}
	return jac, nil
}

// trainableColumn reports whether any of op's parameters is trainable and
// returns its Jacobian column.
func trainableColumn(op state.Operation, firstParam int, col map[int]int) (int, bool) {
	for local := range op.Params {
		if c, ok := col[firstParam+local]; ok {
			return c, true
		}
	}
	return 0, false
}

// undo applies the inverse of a recorded operation in place.
func (e *Engine) undo(v *state.Vector, op state.Operation) error {
	if op.Name == "MatrixOp" {
		return e.ApplyMatrix(v, op.Matrix, op.Wires, !op.Inverse)
	}
	return e.ApplyNamed(v, op.Name, op.Wires, !op.Inverse, op.Params)
}
