package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/timeline"
)

// scheduleFlags carries the schedule selection flags shared between the plain
// and interactive renderers.
type scheduleFlags struct {
	year        int
	granularity string
	sortKey     string
	desc        bool
	expandAll   bool
	plain       bool
}

// addScheduleFlags registers the shared schedule flags on a flag set,
// seeding defaults from the app config.
func addScheduleFlags(fs *pflag.FlagSet, app *App, f *scheduleFlags) {
	fs.IntVar(&f.year, "year", app.DefaultYear, "Calendar year to display")
	fs.StringVar(&f.granularity, "granularity", app.DefaultGranularity, "Column granularity: month or week")
	fs.StringVar(&f.sortKey, "sort", app.DefaultSort, "Row order: name or area")
	fs.BoolVar(&f.desc, "desc", false, "Sort descending")
	fs.BoolVar(&f.expandAll, "expand-all", false, "Expand every location and field")
	fs.BoolVar(&f.plain, "plain", false, "Force plain text output")
}

// sortSpec converts the flag values to the engine's sort spec.
func (f *scheduleFlags) sortSpec() (timeline.SortSpec, error) {
	spec := timeline.SortSpec{Descending: f.desc}
	switch f.sortKey {
	case "", "name":
		spec.Key = timeline.SortByName
	case "area":
		spec.Key = timeline.SortByArea
	default:
		return spec, fmt.Errorf("unknown sort key %q (expected name or area)", f.sortKey)
	}
	return spec, nil
}

// areaFlag registers an optional --area flag; use fs.Changed("area") to tell
// an explicit zero from an absent value.
func areaFlag(fs *pflag.FlagSet, value *float64) {
	fs.Float64Var(value, "area", 0, "Area (optional)")
}

// areaFromFlags returns a pointer only when the flag was set.
func areaFromFlags(fs *pflag.FlagSet, value float64) *float64 {
	if !fs.Changed("area") {
		return nil
	}
	return &value
}
