package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/columnsim/internal/column"
	"github.com/san-kum/columnsim/internal/ode"
)

func TestRemoval(t *testing.T) {
	m := NewRemoval()

	m.Observe(ode.State{0.0002}, 0)
	m.Observe(ode.State{0.00015}, 2.5)
	m.Observe(ode.State{0.0001}, 5)

	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected removal 0.5, got %g", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected zero after reset, got %g", m.Value())
	}
}

func TestRemovalNoSamples(t *testing.T) {
	m := NewRemoval()
	if m.Value() != 0 {
		t.Errorf("expected 0 with no samples, got %g", m.Value())
	}
}

func TestPeakRateAtInlet(t *testing.T) {
	model, err := column.New(column.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	m := NewPeakRate(model)

	// Monotone kinetics: rate magnitude is largest at the highest
	// concentration, i.e. the inlet.
	m.Observe(ode.State{column.DefaultC0}, 0)
	inlet := m.Value()

	m.Observe(ode.State{column.DefaultC0 / 2}, 2.5)
	if m.Value() != inlet {
		t.Errorf("peak should stay at inlet rate: %g vs %g", m.Value(), inlet)
	}

	expected := math.Abs(model.Derive(ode.State{column.DefaultC0}, 0)[0])
	if m.Value() != expected {
		t.Errorf("expected peak %g, got %g", expected, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected zero after reset, got %g", m.Value())
	}
}
