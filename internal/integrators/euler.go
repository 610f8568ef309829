package integrators

import "github.com/san-kum/columnsim/internal/ode"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ode.System, x ode.State, z float64, dz float64) ode.State {
	dx := sys.Derive(x, z)
	result := make(ode.State, len(x))
	for i := range x {
		result[i] = x[i] + dz*dx[i]
	}
	return result
}
