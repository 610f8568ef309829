package integrators

import "github.com/san-kum/columnsim/internal/ode"

type RK4 struct {
	k1, k2, k3, k4 ode.State
	scratch        ode.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(ode.State, n)
		r.k2 = make(ode.State, n)
		r.k3 = make(ode.State, n)
		r.k4 = make(ode.State, n)
		r.scratch = make(ode.State, n)
	}
}

func (r *RK4) Step(sys ode.System, x ode.State, z, dz float64) ode.State {
	n := len(x)
	r.ensureScratch(n)

	k1 := sys.Derive(x, z)
	copy(r.k1, k1)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dz*0.5*r.k1[i]
	}
	k2 := sys.Derive(r.scratch, z+dz*0.5)
	copy(r.k2, k2)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dz*0.5*r.k2[i]
	}
	k3 := sys.Derive(r.scratch, z+dz*0.5)
	copy(r.k3, k3)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dz*r.k3[i]
	}
	k4 := sys.Derive(r.scratch, z+dz)
	copy(r.k4, k4)

	result := make(ode.State, n)
	dz6 := dz / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dz6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
