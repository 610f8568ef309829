package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/columnsim/internal/ode"
)

// expDecay is dx/dz = -x with exact solution x0*exp(-z).
type expDecay struct{}

func (e *expDecay) Dim() int { return 1 }

func (e *expDecay) Derive(x ode.State, z float64) ode.State {
	return ode.State{-x[0]}
}

func TestRK4_ExponentialDecay(t *testing.T) {
	integrator := NewRK4()
	sys := &expDecay{}

	x := ode.State{1.0}
	dz := 0.01
	steps := 500

	for i := 0; i < steps; i++ {
		x = integrator.Step(sys, x, float64(i)*dz, dz)
	}

	exact := math.Exp(-float64(steps) * dz)
	if math.Abs(x[0]-exact) > 1e-10 {
		t.Errorf("RK4 error too large: got %g, want %g", x[0], exact)
	}
}

func TestRK4_MoreAccurateThanEuler(t *testing.T) {
	rk4 := NewRK4()
	euler := NewEuler()
	sys := &expDecay{}

	x4 := ode.State{1.0}
	x1 := ode.State{1.0}
	dz := 0.1

	for i := 0; i < 50; i++ {
		z := float64(i) * dz
		x4 = rk4.Step(sys, x4, z, dz)
		x1 = euler.Step(sys, x1, z, dz)
	}

	exact := math.Exp(-5.0)
	if math.Abs(x4[0]-exact) >= math.Abs(x1[0]-exact) {
		t.Errorf("expected RK4 closer to exact than Euler: rk4=%g euler=%g exact=%g",
			x4[0], x1[0], exact)
	}
}
