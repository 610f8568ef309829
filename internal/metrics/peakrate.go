package metrics

import (
	"math"

	"github.com/san-kum/columnsim/internal/ode"
)

// PeakRate tracks the largest depletion rate magnitude seen along the
// column. For a saturation-kinetics profile this occurs at the inlet.
type PeakRate struct {
	name string
	sys  ode.System
	max  float64
}

func NewPeakRate(sys ode.System) *PeakRate {
	return &PeakRate{name: "peak_rate", sys: sys}
}

func (p *PeakRate) Name() string { return p.name }

func (p *PeakRate) Observe(x ode.State, z float64) {
	dx := p.sys.Derive(x, z)
	for _, v := range dx {
		p.max = math.Max(p.max, math.Abs(v))
	}
}

func (p *PeakRate) Value() float64 { return p.max }

func (p *PeakRate) Reset() { p.max = 0 }
