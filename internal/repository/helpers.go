package repository

import (
	"database/sql"
	"time"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// parseDate parses a stored YYYY-MM-DD value. Unparseable content yields the
// zero time; downstream consumers treat zero dates as unrepresentable and
// drop the record from the render rather than failing.
func parseDate(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseTimestamp parses a stored RFC3339 timestamp, zero on failure.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullableFloatToValue converts a *float64 to a SQLite-storable value,
// nil becoming SQL NULL.
func nullableFloatToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// floatFromNullable converts a scanned sql.NullFloat64 back to a pointer.
func floatFromNullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
