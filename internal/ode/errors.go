package ode

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf entries.
	ErrInvalidState = errors.New("ode: invalid state (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive step fell below Config.MinDz
	// before reaching the next grid point.
	ErrStepTooSmall = errors.New("ode: adaptive step below minimum")

	// ErrParameterBounds indicates a model parameter outside its valid range.
	ErrParameterBounds = errors.New("ode: parameter out of valid bounds")

	// ErrBadGrid indicates an evaluation grid that is too short or not
	// strictly increasing.
	ErrBadGrid = errors.New("ode: grid must be strictly increasing with at least two points")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch between state and system")
)

// SolveError wraps a solver error with the position where it occurred.
type SolveError struct {
	Step    int
	Z       float64
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("step %d (z=%.4f): %v", e.Step, e.Z, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
