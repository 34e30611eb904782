package formatter

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/timeline"
)

// TimelineBar is one renderable bar in fractional column units.
type TimelineBar struct {
	Start float64 // StartColumn + LeftOffset
	Width float64
	Label string
	Draft bool
}

// TimelineRow pairs a prepared row label with its bars.
type TimelineRow struct {
	Label    string
	Style    lipgloss.Style
	Selected bool
	Bars     []TimelineBar
}

// RowLabel renders a tree-style label for a hierarchy row: two spaces of
// indent per level, an expansion marker on location and field rows, and a
// draft marker on not-yet-saved beds.
func RowLabel(row timeline.Row) string {
	indent := strings.Repeat("  ", row.Level())
	switch r := row.(type) {
	case timeline.LocationRow:
		return indent + expansionMarker(r.Expanded) + " " + r.Name()
	case timeline.FieldRow:
		return indent + expansionMarker(r.Expanded) + " " + r.Name()
	case timeline.BedRow:
		name := r.Name()
		if r.IsNewlyCreated() {
			name += " *"
		}
		return indent + "• " + name
	default:
		return indent + row.Name()
	}
}

func expansionMarker(expanded bool) string {
	if expanded {
		return "▾"
	}
	return "▸"
}

// RenderTimeline draws the yearly grid as text: a column header line followed
// by one line per row, with bars mapped from fractional column units onto
// cellWidth-character cells. Bars never bleed outside the grid; a visible bar
// occupies at least one cell.
func RenderTimeline(columns []timeline.Column, rows []TimelineRow, cellWidth int) string {
	if cellWidth < 2 {
		cellWidth = 2
	}
	labelW := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > labelW {
			labelW = w
		}
	}

	var b strings.Builder

	// Header: column labels, one cell each.
	b.WriteString(strings.Repeat(" ", labelW+2))
	for _, c := range columns {
		b.WriteString(StyleDim.Render(fitCell(c.Label, cellWidth)))
	}
	b.WriteString("\n")

	gridW := len(columns) * cellWidth
	for ri, row := range rows {
		label := row.Label
		pad := labelW - lipgloss.Width(label)
		if pad < 0 {
			pad = 0
		}
		styled := row.Style.Render(label)
		if row.Selected {
			styled = StyleBold.Render("> ") + styled
			if pad >= 2 {
				pad -= 2
			}
		} else {
			styled = "  " + styled
		}
		b.WriteString(styled)
		b.WriteString(strings.Repeat(" ", pad))

		b.WriteString(renderBarLine(row.Bars, gridW, cellWidth))
		if ri < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderBarLine rasterizes one row's bars onto a fixed-width line.
func renderBarLine(bars []TimelineBar, gridW, cellWidth int) string {
	cells := make([]rune, gridW)
	draft := make([]bool, gridW)
	for i := range cells {
		cells[i] = ' '
	}

	for _, bar := range bars {
		startCell := int(math.Round(bar.Start * float64(cellWidth)))
		widthCells := int(math.Round(bar.Width * float64(cellWidth)))
		if widthCells < 1 {
			widthCells = 1
		}
		if startCell < 0 {
			widthCells += startCell
			startCell = 0
		}
		if startCell >= gridW {
			continue
		}
		if startCell+widthCells > gridW {
			widthCells = gridW - startCell
		}

		fill := '█'
		if bar.Draft {
			fill = '░'
		}
		for i := startCell; i < startCell+widthCells; i++ {
			cells[i] = fill
			draft[i] = bar.Draft
		}
		// Inline the crop label when the bar is wide enough to hold it.
		if len(bar.Label) <= widthCells-2 {
			for i, ch := range bar.Label {
				cells[startCell+1+i] = ch
			}
		}
	}

	// Group runs by draft flag so each run gets a single styled segment.
	var b strings.Builder
	for i := 0; i < gridW; {
		j := i
		for j < gridW && draft[j] == draft[i] {
			j++
		}
		seg := string(cells[i:j])
		if strings.TrimSpace(seg) == "" {
			b.WriteString(seg)
		} else if draft[i] {
			b.WriteString(StyleDraftBar.Render(seg))
		} else {
			b.WriteString(StyleBar.Render(seg))
		}
		i = j
	}
	return b.String()
}

// fitCell pads or truncates a label to exactly width characters.
func fitCell(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width-1]) + " "
	}
	return s + strings.Repeat(" ", width-len(r))
}
