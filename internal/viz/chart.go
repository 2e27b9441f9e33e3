// Package viz renders glucose series and day summaries for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/glucosim/internal/glucose"
	"github.com/san-kum/glucosim/internal/metrics"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Chart renders the day as a terminal line chart with an hour axis below.
func Chart(series glucose.Series, width, height int) string {
	if len(series) == 0 {
		return ""
	}

	graph := asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("blood glucose (mg/dL)"),
	)

	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(hourAxis(width)))
	b.WriteString("\n")
	return b.String()
}

// hourAxis spaces 0h/6h/12h/18h/24h markers across the plot width.
func hourAxis(width int) string {
	marks := []string{"0h", "6h", "12h", "18h", "24h"}
	gap := width/(len(marks)-1) - 3
	if gap < 1 {
		gap = 1
	}
	var b strings.Builder
	b.WriteString("        ")
	for i, m := range marks {
		b.WriteString(m)
		if i < len(marks)-1 {
			b.WriteString(strings.Repeat(" ", gap))
		}
	}
	return b.String()
}

// Report renders the day summary as a styled block.
func Report(sum metrics.Summary) string {
	tirStyle := okStyle
	if sum.TimeInRange < 0.7 {
		tirStyle = warnStyle
	}
	if sum.TimeInRange < 0.5 {
		tirStyle = alertStyle
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("day summary") + "\n")
	row(&b, "mean", fmt.Sprintf("%.1f mg/dL", sum.Mean), valueStyle)
	row(&b, "peak", fmt.Sprintf("%.1f mg/dL", sum.Peak), valueStyle)
	row(&b, "nadir", fmt.Sprintf("%.1f mg/dL", sum.Nadir), nadirStyle(sum.Nadir))
	row(&b, "in range", fmt.Sprintf("%.1f%%", sum.TimeInRange*100), tirStyle)
	row(&b, "hypo", fmt.Sprintf("%d min", sum.HypoMinutes), valueStyle)
	row(&b, "hyper", fmt.Sprintf("%d min", sum.HyperMinutes), valueStyle)
	row(&b, "est. HbA1c", fmt.Sprintf("%.1f%%", sum.EstimatedA1C), valueStyle)
	return b.String()
}

func nadirStyle(nadir float64) lipgloss.Style {
	switch {
	case nadir < glucose.UrgentLow:
		return alertStyle
	case nadir < glucose.Low:
		return warnStyle
	default:
		return valueStyle
	}
}

func row(b *strings.Builder, label, value string, style lipgloss.Style) {
	b.WriteString("  " + labelStyle.Render(fmt.Sprintf("%-12s", label)) + style.Render(value) + "\n")
}
