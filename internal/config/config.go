package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/columnsim/internal/column"
	"github.com/san-kum/columnsim/internal/ode"
)

const (
	DefaultZMax       = 5.0
	DefaultPoints     = 100
	DefaultIntegrator = "rk45"
	DefaultTolerance  = 1e-9
	DefaultDz         = 0.05
)

type Config struct {
	Integrator string        `yaml:"integrator"`
	C0         float64       `yaml:"c0"`
	ZMax       float64       `yaml:"zmax"`
	Points     int           `yaml:"points"`
	Tolerance  float64       `yaml:"tolerance"`
	Dz         float64       `yaml:"dz"`
	Params     column.Params `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: DefaultIntegrator,
		C0:         column.DefaultC0,
		ZMax:       DefaultZMax,
		Points:     DefaultPoints,
		Tolerance:  DefaultTolerance,
		Dz:         DefaultDz,
		Params:     column.DefaultParams(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Grid builds the evaluation grid [0, ZMax] with Points entries.
func (c *Config) Grid() ([]float64, error) {
	return ode.Linspace(0, c.ZMax, c.Points)
}

// SolverConfig maps file settings onto the solver's step control.
func (c *Config) SolverConfig() ode.Config {
	sc := ode.DefaultConfig()
	sc.Tolerance = c.Tolerance
	sc.Dz = c.Dz
	return sc
}
