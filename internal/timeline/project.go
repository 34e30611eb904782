package timeline

import (
	"time"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// Bar is a planting's projected position on the column grid.
type Bar struct {
	PlantingID int64
	// StartColumn is the index of the column the bar begins in.
	StartColumn int
	// LeftOffset is the fraction in [0,1) of the start column consumed
	// before the bar begins.
	LeftOffset float64
	// Width is the bar's extent in columns; always > 0 for a visible bar.
	Width float64
}

// Project computes a planting's bar on the grid for the target year, or nil
// when the planting is not visible there. It never errors: missing dates,
// reversed ranges, and intervals entirely outside the year all project to nil.
//
// Month granularity:
//  1. If the end date precedes the start date, or the [startYear, endYear]
//     span misses the target year, the bar is invisible.
//  2. StartColumn is the start month when the start year equals the target
//     year; otherwise 0 with LeftOffset forced to 0 (left-clip at the year
//     boundary).
//  3. LeftOffset is (startDay-1)/daysInStartMonth.
//  4. Width is startMonthFraction + monthsBetween + endMonthFraction, where
//     startMonthFraction = (daysInStartMonth-startDay+1)/daysInStartMonth,
//     endMonthFraction = endDay/daysInEndMonth, and monthsBetween =
//     max(0, (endYear-startYear)*12 + (endMonth-startMonth) - 1).
//  5. If the whole-column span, clipped to the grid, is empty, the bar is
//     invisible.
//
// Note the width formula double-counts an interval that starts and ends in
// the same month: [Jan 1, Jan 31] is exactly 2 columns wide because
// monthsBetween clamps at 0 while both month fractions are added
// unconditionally. Long-standing display behavior; kept until explicitly
// corrected since fixing it changes every single-month bar.
//
// Week granularity follows the same clip-then-project shape but takes column
// indices from ISO-8601 (Thursday rule) week numbers and fractions from the
// Monday-start day of week (Sunday mapped to 7). See BuildColumns for the
// known mismatch with the grid's fixed 7-day blocks.
func Project(p domain.Planting, year int, g Granularity) *Bar {
	start, end := p.StartDate, p.EndDate
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil
	}
	if end.Year() < year || start.Year() > year {
		return nil
	}
	if g == GranularityWeek {
		return projectWeeks(p, year)
	}
	return projectMonths(p, year)
}

func projectMonths(p domain.Planting, year int) *Bar {
	sy, sm, sd := p.StartDate.Date()
	ey, em, ed := p.EndDate.Date()

	daysInStart := daysInMonth(sy, sm)
	daysInEnd := daysInMonth(ey, em)

	startCol := 0
	leftOffset := 0.0
	if sy == year {
		startCol = int(sm) - 1
		leftOffset = float64(sd-1) / float64(daysInStart)
	}
	endCol := 11
	if ey == year {
		endCol = int(em) - 1
	}
	if endCol-startCol+1 <= 0 {
		return nil
	}

	startFraction := float64(daysInStart-sd+1) / float64(daysInStart)
	endFraction := float64(ed) / float64(daysInEnd)
	monthsBetween := (ey-sy)*12 + int(em) - int(sm) - 1
	if monthsBetween < 0 {
		monthsBetween = 0
	}

	width := startFraction + float64(monthsBetween) + endFraction
	if width <= 0 {
		return nil
	}
	return &Bar{PlantingID: p.ID, StartColumn: startCol, LeftOffset: leftOffset, Width: width}
}

func projectWeeks(p domain.Planting, year int) *Bar {
	sy := p.StartDate.Year()
	ey := p.EndDate.Year()
	_, sw := p.StartDate.ISOWeek()
	_, ew := p.EndDate.ISOWeek()
	sdow := mondayWeekday(p.StartDate)
	edow := mondayWeekday(p.EndDate)

	startCol := 0
	leftOffset := 0.0
	if sy == year {
		startCol = sw - 1
		leftOffset = float64(sdow-1) / 7
	}
	endCol := 51
	if ey == year {
		endCol = ew - 1
		if endCol > 51 {
			endCol = 51
		}
	}
	// A start in ISO week 53 has no column on the 52-column grid.
	if startCol > 51 || endCol-startCol+1 <= 0 {
		return nil
	}

	startFraction := float64(7-sdow+1) / 7
	endFraction := float64(edow) / 7
	weeksBetween := (ey-sy)*52 + ew - sw - 1
	if weeksBetween < 0 {
		weeksBetween = 0
	}

	width := startFraction + float64(weeksBetween) + endFraction
	if width <= 0 {
		return nil
	}
	return &Bar{PlantingID: p.ID, StartColumn: startCol, LeftOffset: leftOffset, Width: width}
}

// mondayWeekday returns the ISO day of week: Monday = 1 .. Sunday = 7.
func mondayWeekday(t time.Time) int {
	d := int(t.Weekday())
	if d == 0 {
		return 7
	}
	return d
}
