package timeline

import (
	"sort"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects which record field orders sibling rows.
type SortKey string

const (
	SortByName SortKey = "name"
	SortByArea SortKey = "area"
)

// SortSpec is the caller-supplied ordering for sibling rows.
// Ties on the numeric key fall back to a locale-aware case-insensitive name
// comparison; ties on the text key fall back to the numeric key.
type SortSpec struct {
	Key        SortKey
	Descending bool
}

// newCollator builds the collator used for the case-insensitive name key.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// compareArea orders ascending by area with nil (unknown) last.
// Returns the comparison and whether exactly one side was nil; nil-last
// ordering is kept even under a descending sort.
func compareArea(a, b *float64) (cmp int, oneNil bool) {
	a, b = domain.SanitizeArea(a), domain.SanitizeArea(b)
	switch {
	case a == nil && b == nil:
		return 0, false
	case a == nil:
		return 1, true
	case b == nil:
		return -1, true
	case *a < *b:
		return -1, false
	case *a > *b:
		return 1, false
	}
	return 0, false
}

// compareRows implements the double-key ordering for one sibling pair.
// Returns true when a sorts before b.
func compareRows(spec SortSpec, c *collate.Collator, aName, bName string, aArea, bArea *float64) bool {
	dir := 1
	if spec.Descending {
		dir = -1
	}

	if spec.Key == SortByArea {
		if cmp, oneNil := compareArea(aArea, bArea); cmp != 0 {
			if oneNil {
				return cmp < 0
			}
			return cmp*dir < 0
		}
		return c.CompareString(aName, bName)*dir < 0
	}

	// Text key: name first, numeric key as the tie-break.
	if cmp := c.CompareString(aName, bName); cmp != 0 {
		return cmp*dir < 0
	}
	cmp, oneNil := compareArea(aArea, bArea)
	if oneNil {
		return cmp < 0
	}
	return cmp*dir < 0
}

func sortLocations(locs []domain.Location, spec SortSpec, c *collate.Collator) {
	sort.SliceStable(locs, func(i, j int) bool {
		return compareRows(spec, c, locs[i].Name, locs[j].Name, locs[i].Area, locs[j].Area)
	})
}

func sortFields(fields []domain.Field, spec SortSpec, c *collate.Collator) {
	sort.SliceStable(fields, func(i, j int) bool {
		return compareRows(spec, c, fields[i].Name, fields[j].Name, fields[i].Area, fields[j].Area)
	})
}

func sortBeds(beds []domain.Bed, spec SortSpec, c *collate.Collator) {
	sort.SliceStable(beds, func(i, j int) bool {
		return compareRows(spec, c, beds[i].Name, beds[j].Name, beds[i].Area, beds[j].Area)
	})
}
