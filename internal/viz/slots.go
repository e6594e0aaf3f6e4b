package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxSlotText = 12

// Slots draws capacity cells, filling the first len(items) with the live
// elements. cursor marks one live slot, or none when negative. Rows wrap
// every perRow cells.
func Slots(items []string, capacity, cursor, perRow int) string {
	if perRow < 1 {
		perRow = 8
	}
	if capacity < len(items) {
		capacity = len(items)
	}

	cells := make([]string, 0, capacity)
	for i := 0; i < capacity; i++ {
		switch {
		case i < len(items) && i == cursor:
			cells = append(cells, cursorSlot.Render(truncate(items[i])))
		case i < len(items):
			cells = append(cells, liveSlot.Render(truncate(items[i])))
		default:
			cells = append(cells, spareSlot.Render("·"))
		}
	}

	rows := make([]string, 0, capacity/perRow+1)
	for start := 0; start < len(cells); start += perRow {
		end := min(start+perRow, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Summary is a one-line count/capacity description.
func Summary(count, capacity int) string {
	return Subtle.Render("count ") + Value.Render(fmt.Sprint(count)) +
		Subtle.Render("  capacity ") + Value.Render(fmt.Sprint(capacity))
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxSlotText {
		return s
	}
	return string(r[:maxSlotText-1]) + "…"
}

// Plain renders items without styling, one bracketed list.
func Plain(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
