package ode

import (
	"context"
	"fmt"
	"math"
)

type Solver struct {
	sys        System
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func NewSolver(sys System, integrator Integrator) *Solver {
	return &Solver{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Solver) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Solve integrates from grid[0] to grid[len-1], producing exactly one state
// per grid point. The first state is x0. Between grid points the solver
// takes adaptive substeps; it fails if the step underflows cfg.MinDz.
func (s *Solver) Solve(ctx context.Context, x0 State, grid []float64, cfg Config) (*Result, error) {
	if err := s.validate(x0, grid, cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Grid:    grid,
		States:  make([]State, 0, len(grid)),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	result.States = append(result.States, x.Clone())
	s.observe(x, grid[0])

	dz := cfg.Dz
	for i := 1; i < len(grid); i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		var err error
		x, dz, err = s.advance(x, grid[i-1], grid[i], dz, cfg, result)
		if err != nil {
			return result, &SolveError{Step: i, Z: grid[i], Wrapped: err}
		}

		result.States = append(result.States, x.Clone())
		s.observe(x, grid[i])
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// advance carries the state from z to target, landing on target exactly.
func (s *Solver) advance(x State, z, target, dz float64, cfg Config, result *Result) (State, float64, error) {
	eps := 1e-14 * (1 + math.Abs(target))

	for target-z > eps {
		// Clamp the trial step to land on the grid point without
		// letting the clamp poison the step-size suggestion.
		h := dz
		clamped := false
		if h > target-z {
			h = target - z
			clamped = true
		}

		var newX State
		var nextDz float64

		if adaptive, ok := s.integrator.(AdaptiveIntegrator); ok {
			var err error
			newX, nextDz, err = adaptive.StepAdaptive(s.sys, x, z, h, cfg.Tolerance)
			if err != nil {
				return nil, 0, err
			}
		} else {
			newX, nextDz = s.doubleStep(x, z, h, cfg)
		}

		if cfg.ValidateState && !newX.IsValid() {
			return nil, 0, ErrInvalidState
		}

		z += h
		x = newX
		result.Steps++

		if !clamped {
			dz = math.Min(nextDz, cfg.MaxDz)
			if dz < cfg.MinDz && target-z > eps {
				return nil, 0, ErrStepTooSmall
			}
		}
	}

	return x, dz, nil
}

// doubleStep estimates local error for non-adaptive integrators by
// comparing one full step against two half steps.
func (s *Solver) doubleStep(x State, z, dz float64, cfg Config) (State, float64) {
	x1 := s.integrator.Step(s.sys, x, z, dz)
	xHalf := s.integrator.Step(s.sys, x, z, dz/2)
	x2 := s.integrator.Step(s.sys, xHalf, z+dz/2, dz/2)

	err := x1.Sub(x2).Norm()

	next := dz
	if err > cfg.Tolerance {
		next = dz / 2
	} else if err < cfg.Tolerance/10 {
		next = dz * 2
	}

	return x2, next
}

func (s *Solver) observe(x State, z float64) {
	for _, m := range s.metrics {
		m.Observe(x, z)
	}
	for _, obs := range s.observers {
		obs.OnPoint(x, z)
	}
}

func (s *Solver) validate(x0 State, grid []float64, cfg Config) error {
	if len(x0) != s.sys.Dim() {
		return ErrDimensionMismatch
	}
	if len(grid) < 2 {
		return ErrBadGrid
	}
	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			return ErrBadGrid
		}
	}
	if cfg.Dz <= 0 {
		return fmt.Errorf("dz must be positive, got %f", cfg.Dz)
	}
	if cfg.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", cfg.Tolerance)
	}
	return nil
}
