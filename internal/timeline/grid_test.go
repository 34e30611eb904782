package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildColumns_MonthGrid(t *testing.T) {
	cols := BuildColumns(2027, GranularityMonth)

	require.Len(t, cols, 12)
	assert.Equal(t, "Jan", cols[0].Label)
	assert.Equal(t, "Dec", cols[11].Label)
	for i, c := range cols {
		assert.Equal(t, date(2027, time.Month(i+1), 1), c.Start)
	}
}

func TestBuildColumns_WeekGridIsFixedSevenDayBlocks(t *testing.T) {
	cols := BuildColumns(2027, GranularityWeek)

	require.Len(t, cols, 52)
	assert.Equal(t, "W1", cols[0].Label)
	assert.Equal(t, date(2027, time.January, 1), cols[0].Start)
	assert.Equal(t, date(2027, time.January, 8), cols[1].Start)
	assert.Equal(t, date(2027, time.December, 24), cols[51].Start)
}

func TestBuildColumns_WeekGridLeapYear(t *testing.T) {
	cols := BuildColumns(2028, GranularityWeek)

	require.Len(t, cols, 52)
	// Jan 1 + 51*7 days lands one day earlier in a leap year.
	assert.Equal(t, date(2028, time.December, 23), cols[51].Start)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(2026, time.January))
	assert.Equal(t, 28, daysInMonth(2026, time.February))
	assert.Equal(t, 29, daysInMonth(2028, time.February))
	assert.Equal(t, 30, daysInMonth(2026, time.November))
	assert.Equal(t, 31, daysInMonth(2026, time.December))
}

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, GranularityWeek, ParseGranularity("week"))
	assert.Equal(t, GranularityMonth, ParseGranularity("month"))
	assert.Equal(t, GranularityMonth, ParseGranularity(""))
	assert.Equal(t, GranularityMonth, ParseGranularity("fortnight"))
}
