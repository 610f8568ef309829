package export

import (
	"strings"
	"testing"

	"github.com/san-kum/columnsim/internal/viz"
)

func TestProfileSVG(t *testing.T) {
	z := []float64{0, 1, 2, 3, 4, 5}
	values := []float64{1.0, 0.998, 0.996, 0.994, 0.993, 0.991}

	svg := ProfileSVG(z, values, 640, 480)

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Fatal("expected xml header")
	}
	for _, want := range []string{"<polyline", viz.XLabel, viz.YLabel, "</svg>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestProfileSVGRejectsShortInput(t *testing.T) {
	if svg := ProfileSVG([]float64{0}, []float64{1}, 640, 480); svg != "" {
		t.Errorf("expected empty output for single point, got %d bytes", len(svg))
	}
	if svg := ProfileSVG([]float64{0, 1}, []float64{1}, 640, 480); svg != "" {
		t.Error("expected empty output for mismatched lengths")
	}
}
