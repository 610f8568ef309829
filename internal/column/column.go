// Package column models dissolved gas removal along a fixed-bed treatment
// column with saturation (Monod) kinetics.
package column

import (
	"fmt"

	"github.com/san-kum/columnsim/internal/ode"
)

// DefaultC0 is the influent gas concentration in mg/L (NH3).
const DefaultC0 = 0.000195

// Params are the physical constants of the column. Immutable for a run.
type Params struct {
	Alpha float64 `yaml:"alpha"` // mass-transfer coefficient
	V0    float64 `yaml:"v0"`    // volumetric flow
	X     float64 `yaml:"x"`     // cross-sectional dimension
	Y     float64 `yaml:"y"`     // cross-sectional dimension
	Mu    float64 `yaml:"mu"`    // maximum reaction rate
	K     float64 `yaml:"k"`     // half-saturation constant
	M     float64 `yaml:"m"`     // biomass concentration
	Delta float64 `yaml:"delta"` // rate scaling factor
}

func DefaultParams() Params {
	return Params{
		Alpha: 0.9,
		V0:    2,
		X:     2,
		Y:     5,
		Mu:    5,
		K:     1,
		M:     1,
		Delta: 0.001,
	}
}

func (p Params) Validate() error {
	checks := []struct {
		name string
		val  float64
	}{
		{"alpha", p.Alpha},
		{"v0", p.V0},
		{"x", p.X},
		{"y", p.Y},
		{"mu", p.Mu},
		{"k", p.K},
		{"m", p.M},
		{"delta", p.Delta},
	}
	for _, c := range checks {
		if c.val <= 0 {
			return fmt.Errorf("%s = %g: %w", c.name, c.val, ode.ErrParameterBounds)
		}
	}
	return nil
}

// Model is the scalar ODE dCg/dz for the column. State is [Cg].
type Model struct {
	params Params
}

func New(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Model{params: p}, nil
}

func (m *Model) Dim() int { return 1 }

// Derive returns the depletion rate
//
//	dCg/dz = -(alpha/V0)*(X/Y)*mu*(Cg/m)/(K + Cg/m)*delta
//
// z does not appear in the expression; it is part of the solver contract.
// The rate is zero at Cg = 0 and nonpositive for Cg >= 0.
func (m *Model) Derive(x ode.State, z float64) ode.State {
	p := m.params
	cg := x[0]
	rate := -p.Alpha / p.V0 * p.X / p.Y * p.Mu * (cg / p.M) / (p.K + cg/p.M) * p.Delta
	return ode.State{rate}
}

func (m *Model) Params() Params { return m.params }

// GetParams exposes parameters by name for the live view.
func (m *Model) GetParams() map[string]float64 {
	p := m.params
	return map[string]float64{
		"alpha": p.Alpha,
		"v0":    p.V0,
		"x":     p.X,
		"y":     p.Y,
		"mu":    p.Mu,
		"k":     p.K,
		"m":     p.M,
		"delta": p.Delta,
	}
}

func (m *Model) SetParam(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s = %g: %w", name, value, ode.ErrParameterBounds)
	}
	switch name {
	case "alpha":
		m.params.Alpha = value
	case "v0":
		m.params.V0 = value
	case "x":
		m.params.X = value
	case "y":
		m.params.Y = value
	case "mu":
		m.params.Mu = value
	case "k":
		m.params.K = value
	case "m":
		m.params.M = value
	case "delta":
		m.params.Delta = value
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}
