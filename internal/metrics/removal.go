package metrics

import "github.com/san-kum/columnsim/internal/ode"

// Removal tracks the fraction of the influent concentration removed by the
// end of the column: 1 - Cg(zmax)/Cg(0).
type Removal struct {
	name    string
	first   float64
	last    float64
	samples int
}

func NewRemoval() *Removal {
	return &Removal{name: "removal_fraction"}
}

func (r *Removal) Name() string { return r.name }

func (r *Removal) Observe(x ode.State, z float64) {
	if len(x) == 0 {
		return
	}
	if r.samples == 0 {
		r.first = x[0]
	}
	r.last = x[0]
	r.samples++
}

func (r *Removal) Value() float64 {
	if r.samples == 0 || r.first == 0 {
		return 0
	}
	return 1 - r.last/r.first
}

func (r *Removal) Reset() {
	r.first = 0
	r.last = 0
	r.samples = 0
}
