package viz

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dynarray/internal/script"
)

// TraceTable lays out every record of a run as a table row.
func TraceTable(tr *script.Trace) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Subtle).
		Headers("#", "op", "result", "count", "capacity", "items").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, r := range tr.Records {
		t.Row(
			strconv.Itoa(r.Step),
			r.Op,
			r.Result,
			strconv.Itoa(r.Count),
			strconv.Itoa(r.Capacity),
			Plain(r.Items),
		)
	}
	return t.Render()
}

// GrowthPlot charts count and capacity across the records of a run. Runs
// with fewer than two records have nothing to plot and yield "".
func GrowthPlot(tr *script.Trace, width, height int) string {
	if len(tr.Records) < 2 {
		return ""
	}
	return asciigraph.PlotMany(
		[][]float64{tr.Counts(), tr.Capacities()},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow),
		asciigraph.Caption(fmt.Sprintf("%s: count (green) vs capacity (yellow)", tr.Name)),
	)
}

// CapacityPlot charts the capacity after each append of a growth run.
func CapacityPlot(capacities []float64, width, height int) string {
	if len(capacities) == 0 {
		return ""
	}
	return asciigraph.Plot(capacities,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("capacity after each add"),
	)
}
