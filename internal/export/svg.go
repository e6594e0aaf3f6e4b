package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/dynarray/internal/script"
)

const (
	slotWidth  = 96
	slotHeight = 32
	slotGap    = 8
	rowHeight  = slotHeight + 2*slotGap
	labelWidth = 160
)

// TraceToSVG draws one row of slots per record: live slots filled and
// labelled, spare capacity outlined.
func TraceToSVG(tr *script.Trace) string {
	maxCap := 0
	for _, r := range tr.Records {
		maxCap = max(maxCap, r.Capacity)
	}

	width := labelWidth + maxCap*(slotWidth+slotGap) + slotGap
	height := len(tr.Records)*rowHeight + slotGap

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="monospace" font-size="12">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for row, r := range tr.Records {
		y := slotGap + row*rowHeight
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#888899">%d %s</text>
`, slotGap, y+slotHeight/2+4, r.Step, html.EscapeString(r.Op)))

		for i := 0; i < r.Capacity; i++ {
			x := labelWidth + i*(slotWidth+slotGap)
			if i < len(r.Items) {
				sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="4" fill="#003322" stroke="#00ff88"/>
<text x="%d" y="%d" fill="#ffffff">%s</text>
`, x, y, slotWidth, slotHeight, x+6, y+slotHeight/2+4, html.EscapeString(r.Items[i])))
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="4" fill="none" stroke="#444466"/>
`, x, y, slotWidth, slotHeight))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
