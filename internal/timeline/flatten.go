package timeline

import "github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"

// Flatten produces the ordered, depth-first list of visible hierarchy rows:
//  1. With more than one location: locations at level 0; for each expanded
//     location its fields at level 1; for each expanded field its beds at
//     level 2.
//  2. With at most one location: location rows are suppressed and fields are
//     promoted to level 0 (beds to level 1). A single-location farm gains
//     nothing from the extra nesting level; this holds for zero locations
//     too, so orphaned fields still render.
//
// Siblings within each branch are ordered by spec. Missing parent links are
// not an error: the branch simply has no children. Pure function of its
// inputs; the expansion set is only read.
func Flatten(locations []domain.Location, fields []domain.Field, beds []domain.Bed, expanded *ExpansionState, spec SortSpec) []Row {
	if expanded == nil {
		expanded = NewExpansionState(nil, "")
	}
	c := newCollator()

	locs := append([]domain.Location(nil), locations...)
	flds := append([]domain.Field(nil), fields...)
	bds := append([]domain.Bed(nil), beds...)
	sortLocations(locs, spec, c)
	sortFields(flds, spec, c)
	sortBeds(bds, spec, c)

	var rows []Row

	if len(locs) > 1 {
		for _, loc := range locs {
			lr := LocationRow{Location: loc, Expanded: expanded.IsExpanded(LocationRowID(loc.ID))}
			rows = append(rows, lr)
			if !lr.Expanded {
				continue
			}
			rows = appendFieldRows(rows, flds, bds, loc.ID, 1, lr.RowID(), expanded)
		}
		return rows
	}

	// Promoted form: every field at level 0 regardless of parent link.
	for _, f := range flds {
		fr := FieldRow{Field: f, Expanded: expanded.IsExpanded(FieldRowID(f.ID)), level: 0, parent: ""}
		rows = append(rows, fr)
		if !fr.Expanded {
			continue
		}
		rows = appendBedRows(rows, bds, f.ID, 1, fr.RowID())
	}
	return rows
}

// appendFieldRows emits the fields of one location and, under each expanded
// field, its beds.
func appendFieldRows(rows []Row, fields []domain.Field, beds []domain.Bed, locationID int64, level int, parent string, expanded *ExpansionState) []Row {
	for _, f := range fields {
		if f.LocationID != locationID {
			continue
		}
		fr := FieldRow{Field: f, Expanded: expanded.IsExpanded(FieldRowID(f.ID)), level: level, parent: parent}
		rows = append(rows, fr)
		if !fr.Expanded {
			continue
		}
		rows = appendBedRows(rows, beds, f.ID, level+1, fr.RowID())
	}
	return rows
}

func appendBedRows(rows []Row, beds []domain.Bed, fieldID int64, level int, parent string) []Row {
	for _, b := range beds {
		if b.FieldID != fieldID {
			continue
		}
		rows = append(rows, BedRow{Bed: b, level: level, parent: parent})
	}
	return rows
}
