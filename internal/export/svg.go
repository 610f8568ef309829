package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/columnsim/internal/viz"
)

const margin = 48.0

// ProfileSVG renders the normalized concentration curve as an SVG polyline
// with labeled axes.
func ProfileSVG(z, values []float64, width, height int) string {
	if len(z) < 2 || len(z) != len(values) {
		return ""
	}

	w := float64(width)
	h := float64(height)

	zMin, zMax := z[0], z[len(z)-1]
	vMin, vMax := values[0], values[0]
	for _, v := range values {
		if v < vMin {
			vMin = v
		}
		if v > vMax {
			vMax = v
		}
	}

	zRange := zMax - zMin
	vRange := vMax - vMin
	if zRange == 0 {
		zRange = 1
	}
	if vRange == 0 {
		vRange = 1
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	// Axes
	sb.WriteString(fmt.Sprintf(`<g stroke="#333333" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, margin, h-margin, w-margin/2, h-margin,
		margin, h-margin, margin, margin/2))

	// Curve
	sb.WriteString(`<polyline fill="none" stroke="#1f77b4" stroke-width="1.5" points="`)
	for i := range z {
		px := margin + (z[i]-zMin)/zRange*(w-1.5*margin)
		py := h - margin - (values[i]-vMin)/vRange*(h-1.5*margin)
		sb.WriteString(fmt.Sprintf("%.1f,%.1f ", px, py))
	}
	sb.WriteString("\"/>\n")

	// Labels; the y label matches the source plot, the curve is Cg/Cg0.
	sb.WriteString(fmt.Sprintf(`<g font-family="sans-serif" font-size="12" fill="#333333">
<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>
<text x="%.1f" y="%.1f" text-anchor="middle" transform="rotate(-90 %.1f %.1f)">%s</text>
<text x="%.1f" y="%.1f" text-anchor="middle">%.2f</text>
<text x="%.1f" y="%.1f" text-anchor="middle">%.2f</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4f</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4f</text>
</g>
`,
		w/2, h-margin/3, viz.XLabel,
		margin/3, h/2, margin/3, h/2, viz.YLabel,
		margin, h-margin/1.5, zMin,
		w-margin/2, h-margin/1.5, zMax,
		margin-6, h-margin, vMin,
		margin-6, margin/2+10, vMax))

	sb.WriteString("</svg>\n")
	return sb.String()
}
