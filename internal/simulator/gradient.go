package simulator

import (
	"fmt"

	"github.com/spindle-qc/spindle/internal/state"
	"github.com/spindle-qc/spindle/internal/tape"
)

// Gradient differentiates the expectation values recorded on the tape with
// respect to the trainable gate parameters, writing one row of partial
// derivatives per recorded observable into the caller's buffers.
//
// An empty trainable list selects every recorded parameter in tape order.
// Every recorded measurement must be an expectation value, the buffer count
// must equal the recorded observable count, and each buffer must hold at
// least one entry per trainable parameter. With nothing to differentiate
// (no parameters or no observables) the call is a no-op.
//
// The Jacobian is computed by the adjoint method against the current state,
// which must already reflect the tape's operations; they are not replayed.
func (s *Simulator) Gradient(grads [][]float64, trainable []int) error {
	uses := s.rec.Observables()
	numObs := len(uses)
	numParams := s.rec.NumParams()

	numTrain := len(trainable)
	if numTrain == 0 {
		numTrain = numParams
	}
	if numTrain*numObs == 0 {
		return nil
	}

	if len(grads) != numObs {
		return fmt.Errorf("%d gradient buffers for %d observables: %w",
			len(grads), numObs, ErrInvalidArity)
	}
	for _, use := range uses {
		if use.Kind != tape.KindExpval {
			return ErrUnsupportedMeasurement
		}
	}
	for i, buf := range grads {
		if len(buf) < numTrain {
			return fmt.Errorf("gradient buffer %d holds %d of %d entries: %w",
				i, len(buf), numTrain, ErrInvalidArity)
		}
	}

	obs := make([]state.Applier, numObs)
	for i, use := range uses {
		o, err := s.reg.Get(use.Key)
		if err != nil {
			return err
		}
		obs[i] = o
	}

	train := trainable
	if len(train) == 0 {
		train = make([]int, numParams)
		for i := range train {
			train[i] = i
		}
	} else {
		for _, idx := range train {
			if idx < 0 || idx >= numParams {
				return fmt.Errorf("trainable parameter %d of %d recorded: %w",
					idx, numParams, ErrInvalidArity)
			}
		}
	}

	jac, err := s.eng.AdjointJacobian(s.vec, s.rec.Operations(), obs, train)
	if err != nil {
		return err
	}
	for i := range grads {
		copy(grads[i][:numTrain], jac[i*numTrain:(i+1)*numTrain])
	}
	return nil
}
