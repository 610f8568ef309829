package viz

import (
	"strings"
	"testing"
)

func TestProfileContainsAxisLabels(t *testing.T) {
	z := []float64{0, 1, 2, 3, 4, 5}
	values := []float64{1.0, 0.998, 0.996, 0.994, 0.993, 0.991}

	out := Profile(z, values)

	if out == "" {
		t.Fatal("expected non-empty plot")
	}
	if !strings.Contains(out, XLabel) {
		t.Errorf("missing x label %q", XLabel)
	}
	if !strings.Contains(out, YLabel) {
		t.Errorf("missing y label %q", YLabel)
	}
	if !strings.Contains(out, "Cg/Cg0") {
		t.Error("caption should note the curve is normalized")
	}
}

func TestProfileRejectsMismatchedInput(t *testing.T) {
	if out := Profile([]float64{0, 1}, []float64{1}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
	if out := Profile(nil, nil); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestAxisLineEndpoints(t *testing.T) {
	line := axisLine(0, 5)
	if !strings.Contains(line, "0.00") || !strings.Contains(line, "5.00") {
		t.Errorf("axis line missing endpoints: %q", line)
	}
	if !strings.Contains(line, XLabel) {
		t.Errorf("axis line missing label: %q", line)
	}
}
