package ode

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	grid, err := Linspace(0, 5, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(grid) != 100 {
		t.Fatalf("expected 100 points, got %d", len(grid))
	}
	if grid[0] != 0 {
		t.Errorf("expected first point 0, got %g", grid[0])
	}
	if math.Abs(grid[99]-5) > 1e-12 {
		t.Errorf("expected last point 5, got %g", grid[99])
	}

	want := 5.0 / 99.0
	for i := 1; i < len(grid); i++ {
		if math.Abs((grid[i]-grid[i-1])-want) > 1e-12 {
			t.Fatalf("uneven spacing at %d: %g", i, grid[i]-grid[i-1])
		}
	}
}

func TestLinspaceRejectsBadArgs(t *testing.T) {
	if _, err := Linspace(0, 5, 1); err == nil {
		t.Error("expected error for n < 2")
	}
	if _, err := Linspace(5, 0, 10); err == nil {
		t.Error("expected error for stop <= start")
	}
}
