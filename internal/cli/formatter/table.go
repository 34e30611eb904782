package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls horizontal cell alignment within a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// RenderTable renders an aligned table with a header separator line. Column
// widths follow the widest cell, measured by visible width so styled cells
// line up. aligns may be shorter than headers; missing entries default left.
func RenderTable(headers []string, rows [][]string, aligns ...Align) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	alignOf := func(i int) Align {
		if i < len(aligns) {
			return aligns[i]
		}
		return AlignLeft
	}

	const colGap = 2
	var b strings.Builder

	writeCell := func(i int, raw, styled string, last bool) {
		pad := widths[i] - lipgloss.Width(raw)
		if pad < 0 {
			pad = 0
		}
		if alignOf(i) == AlignRight {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(styled)
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
			return
		}
		b.WriteString(styled)
		if !last {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}

	for i, h := range headers {
		writeCell(i, h, StyleHeader.Render(h), i == cols-1)
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for ri, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, cell, i == cols-1)
		}
		if ri < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
