package timeline

import (
	"fmt"
	"time"
)

// Granularity is the calendar resolution of the visualization grid.
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityWeek  Granularity = "week"
)

// ParseGranularity normalizes a user-supplied granularity string,
// defaulting to month.
func ParseGranularity(s string) Granularity {
	if Granularity(s) == GranularityWeek {
		return GranularityWeek
	}
	return GranularityMonth
}

// Column is one grid column: its display label and the first instant of the
// span it covers.
type Column struct {
	Label string
	Start time.Time
}

// BuildColumns produces the ordered column grid for a year.
//
// Month granularity: exactly 12 columns, one per calendar month.
//
// Week granularity: exactly 52 columns of fixed 7-day blocks anchored at
// January 1st. This is deliberately NOT ISO-8601 week numbering; the interval
// projector's week path uses ISO week numbers, and the two schemes disagree
// near year boundaries. Both behaviors are preserved as-is pending product
// guidance.
func BuildColumns(year int, g Granularity) []Column {
	if g == GranularityWeek {
		cols := make([]Column, 52)
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for i := range cols {
			cols[i] = Column{
				Label: fmt.Sprintf("W%d", i+1),
				Start: jan1.AddDate(0, 0, i*7),
			}
		}
		return cols
	}

	cols := make([]Column, 12)
	for i := range cols {
		m := time.Month(i + 1)
		cols[i] = Column{
			Label: m.String()[:3],
			Start: time.Date(year, m, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return cols
}

// daysInMonth returns the day count of a month; day 0 of the next month is
// the last day of this one.
func daysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
