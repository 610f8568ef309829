package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	XLabel = "z [m]"
	// YLabel is carried over from the source plot verbatim; the plotted
	// curve is the dimensionless ratio Cg/Cg0, so the caption spells
	// that out next to the label.
	YLabel = "Cg [g/L]"
)

const (
	plotWidth  = 72
	plotHeight = 15
)

// Profile renders the normalized concentration curve against z.
func Profile(z, normalized []float64) string {
	if len(z) == 0 || len(z) != len(normalized) {
		return ""
	}

	graph := asciigraph.Plot(normalized,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s (plotted as Cg/Cg0)", YLabel)),
	)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("column profile"))
	sb.WriteString("\n")
	sb.WriteString(graphStyle.Render(graph))
	sb.WriteString("\n")
	sb.WriteString(axisStyle.Render(axisLine(z[0], z[len(z)-1])))
	sb.WriteString("\n")
	return sb.String()
}

func axisLine(zMin, zMax float64) string {
	left := fmt.Sprintf("%.2f", zMin)
	right := fmt.Sprintf("%.2f", zMax)
	label := XLabel

	gap := plotWidth - len(left) - len(right) - len(label)
	if gap < 2 {
		return fmt.Sprintf("%s  %s  %s", left, label, right)
	}
	half := gap / 2
	return left + strings.Repeat(" ", half) + label + strings.Repeat(" ", gap-half) + right
}
