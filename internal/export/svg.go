package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/glucosim/internal/glucose"
)

// SeriesToSVG renders the day as an SVG polyline on a dark background, with
// dashed guide lines at the low/high thresholds.
func SeriesToSVG(series glucose.Series, width, height int) string {
	if len(series) < 2 {
		return ""
	}

	minY, maxY := series.Min(), series.Max()
	if minY > glucose.Low {
		minY = glucose.Low
	}
	if maxY < glucose.High {
		maxY = glucose.High
	}

	// Pad the vertical range so the trace never touches the frame.
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	toX := func(minute int) float64 {
		return float64(minute) / float64(len(series)-1) * float64(width)
	}
	toY := func(v float64) float64 {
		return float64(height) - (v-minY)/rangeY*float64(height)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, threshold := range []float64{glucose.Low, glucose.High} {
		y := toY(threshold)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#555555" stroke-width="1" stroke-dasharray="6,4"/>
`, y, width, y))
	}

	sb.WriteString(`<path fill="none" stroke="#00d0a0" stroke-width="1.5" d="M`)
	for i, v := range series {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(i), toY(v)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(i), toY(v)))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
