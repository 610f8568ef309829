package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// System is the right-hand side of dX/dz = f(X, z). The independent
// variable is the axial position z, not time.
type System interface {
	Derive(x State, z float64) State
	Dim() int
}

type Integrator interface {
	Step(sys System, x State, z float64, dz float64) State
}

// AdaptiveIntegrator additionally reports an error-controlled suggestion
// for the next step size.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, z, dz, tol float64) (State, float64, error)
}

type Metric interface {
	Name() string
	Observe(x State, z float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnPoint(x State, z float64)
}

// Config holds solver step-size control. Dz is the initial substep between
// grid points; the solver adapts it within [MinDz, MaxDz].
type Config struct {
	Dz            float64
	Tolerance     float64
	MaxDz         float64
	MinDz         float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dz:            0.05,
		Tolerance:     1e-9,
		MaxDz:         0.5,
		MinDz:         1e-12,
		ValidateState: true,
	}
}

// Result holds one state per grid point. Result.Grid aliases the grid the
// solver was given.
type Result struct {
	Grid    []float64
	States  []State
	Metrics map[string]float64
	Steps   int
}

// Profile returns the first state component at each grid point.
func (r *Result) Profile() []float64 {
	p := make([]float64, len(r.States))
	for i, s := range r.States {
		if len(s) > 0 {
			p[i] = s[0]
		}
	}
	return p
}

// Normalized returns Profile scaled by its first value, so the curve
// starts at 1.0. A zero initial value yields the raw profile.
func (r *Result) Normalized() []float64 {
	p := r.Profile()
	if len(p) == 0 || p[0] == 0 {
		return p
	}
	c0 := p[0]
	for i := range p {
		p[i] /= c0
	}
	return p
}
