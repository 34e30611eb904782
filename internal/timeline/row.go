// Package timeline implements the schedule visualization engine: flattening
// the location → field → bed hierarchy into visible rows, building the yearly
// column grid, and projecting planting date ranges onto that grid.
package timeline

import (
	"fmt"
	"strconv"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// RowKind discriminates the three hierarchy row variants.
type RowKind string

const (
	RowLocation RowKind = "location"
	RowField    RowKind = "field"
	RowBed      RowKind = "bed"
)

// Row is the common surface of the three hierarchy row variants. Kind-specific
// data (expansion state, draft flags, the underlying record) lives on the
// concrete types, so a consumer can never read a field that is meaningless
// for a given kind.
type Row interface {
	// RowID is unique across the whole flattened list:
	// "location-<id>", "field-<id>", or the raw numeric bed id.
	RowID() string
	Kind() RowKind
	// Level is the indent depth. With more than one location: 0/1/2.
	// With at most one location, location rows are suppressed and
	// fields are promoted to level 0.
	Level() int
	// ParentRowID is the RowID of the parent row, or "" for top-level rows.
	ParentRowID() string
	Name() string
	Area() *float64
	Notes() string
}

// LocationRow is a level-0 location row. Present only when the farm has more
// than one location.
type LocationRow struct {
	Location domain.Location
	Expanded bool
}

func (r LocationRow) RowID() string       { return LocationRowID(r.Location.ID) }
func (r LocationRow) Kind() RowKind       { return RowLocation }
func (r LocationRow) Level() int          { return 0 }
func (r LocationRow) ParentRowID() string { return "" }
func (r LocationRow) Name() string        { return r.Location.Name }
func (r LocationRow) Area() *float64      { return domain.SanitizeArea(r.Location.Area) }
func (r LocationRow) Notes() string       { return r.Location.Notes }

// FieldRow is a field row, at level 1 under its location or promoted to
// level 0 on single-location farms.
type FieldRow struct {
	Field    domain.Field
	Expanded bool

	level  int
	parent string
}

func (r FieldRow) RowID() string       { return FieldRowID(r.Field.ID) }
func (r FieldRow) Kind() RowKind       { return RowField }
func (r FieldRow) Level() int          { return r.level }
func (r FieldRow) ParentRowID() string { return r.parent }
func (r FieldRow) Name() string        { return r.Field.Name }
func (r FieldRow) Area() *float64      { return domain.SanitizeArea(r.Field.Area) }
func (r FieldRow) Notes() string       { return r.Field.Notes }

// BedRow is a leaf row. Plantings project onto the timeline at bed rows.
type BedRow struct {
	Bed domain.Bed

	level  int
	parent string
}

func (r BedRow) RowID() string       { return BedRowID(r.Bed.ID) }
func (r BedRow) Kind() RowKind       { return RowBed }
func (r BedRow) Level() int          { return r.level }
func (r BedRow) ParentRowID() string { return r.parent }
func (r BedRow) Name() string        { return r.Bed.Name }
func (r BedRow) Area() *float64      { return domain.SanitizeArea(r.Bed.Area) }
func (r BedRow) Notes() string       { return r.Bed.Notes }

// IsNewlyCreated reports whether the bed is a local draft (negative id).
func (r BedRow) IsNewlyCreated() bool { return r.Bed.ID < 0 }

// LocationRowID derives the row identifier for a location.
func LocationRowID(id int64) string { return fmt.Sprintf("location-%d", id) }

// FieldRowID derives the row identifier for a field.
func FieldRowID(id int64) string { return fmt.Sprintf("field-%d", id) }

// BedRowID derives the row identifier for a bed: the raw numeric id.
func BedRowID(id int64) string { return strconv.FormatInt(id, 10) }
