package viz

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/columnsim/internal/column"
	"github.com/san-kum/columnsim/internal/integrators"
	"github.com/san-kum/columnsim/internal/ode"
)

func newTestLive(t *testing.T) Live {
	t.Helper()
	model, err := column.New(column.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	l, err := NewLive(model, integrators.NewRK4(), column.DefaultC0, 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestNewLiveRejectsBadGrid(t *testing.T) {
	model, err := column.New(column.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	for _, points := range []int{-1, 0, 1} {
		if _, err := NewLive(model, integrators.NewRK4(), column.DefaultC0, 5, points); !errors.Is(err, ode.ErrBadGrid) {
			t.Errorf("points=%d: expected ErrBadGrid, got %v", points, err)
		}
	}
	if _, err := NewLive(model, integrators.NewRK4(), column.DefaultC0, 0, 100); !errors.Is(err, ode.ErrBadGrid) {
		t.Errorf("zmax=0: expected ErrBadGrid, got %v", err)
	}
}

func TestLiveStepsToOutlet(t *testing.T) {
	l := newTestLive(t)

	for i := 0; i < 200 && !l.done; i++ {
		l.step()
	}

	if !l.done {
		t.Fatal("expected sweep to reach the outlet")
	}
	if len(l.values) != 100 {
		t.Errorf("expected 100 samples, got %d", len(l.values))
	}
	if l.values[0] != 1.0 {
		t.Errorf("normalized curve must start at 1.0, got %g", l.values[0])
	}
	last := l.values[len(l.values)-1]
	if last >= 1.0 || last <= 0 {
		t.Errorf("outlet value out of range: %g", last)
	}
}

func TestLiveViewRendersStats(t *testing.T) {
	l := newTestLive(t)
	l.step()

	out := l.View()
	for _, want := range []string{"Cg/Cg0", "removal", YLabel, "space pause"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
