package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/columnsim/internal/column"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.C0 != column.DefaultC0 {
		t.Errorf("expected c0 %g, got %g", column.DefaultC0, cfg.C0)
	}
	if cfg.ZMax != 5.0 || cfg.Points != 100 {
		t.Errorf("expected grid 0..5 x100, got zmax=%g points=%d", cfg.ZMax, cfg.Points)
	}
	if cfg.Integrator != "rk45" {
		t.Errorf("expected rk45 default, got %s", cfg.Integrator)
	}
	if err := cfg.Params.Validate(); err != nil {
		t.Errorf("default params should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("zmax: 10\nintegrator: rk4\nparams:\n  mu: 2.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.ZMax != 10 {
		t.Errorf("expected zmax 10, got %g", cfg.ZMax)
	}
	if cfg.Integrator != "rk4" {
		t.Errorf("expected rk4, got %s", cfg.Integrator)
	}
	if cfg.Params.Mu != 2.5 {
		t.Errorf("expected mu 2.5, got %g", cfg.Params.Mu)
	}
	// Untouched fields keep defaults.
	if cfg.Points != DefaultPoints || cfg.Params.K != 1 {
		t.Errorf("expected untouched defaults, got points=%d k=%g", cfg.Points, cfg.Params.K)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Points = 50
	cfg.Params.Delta = 0.002

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Points != 50 || loaded.Params.Delta != 0.002 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestGrid(t *testing.T) {
	cfg := DefaultConfig()
	grid, err := cfg.Grid()
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if len(grid) != 100 || grid[0] != 0 || math.Abs(grid[99]-5) > 1e-12 {
		t.Errorf("unexpected grid: len=%d first=%g last=%g", len(grid), grid[0], grid[len(grid)-1])
	}

	cfg.Points = 1
	if _, err := cfg.Grid(); err == nil {
		t.Error("expected error for 1-point grid")
	}
}
