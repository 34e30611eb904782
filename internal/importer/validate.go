package importer

import (
	"fmt"
	"math"
	"time"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	locRefs := make(map[string]bool)
	errs = append(errs, validateLocations(schema.Locations, locRefs)...)

	fieldRefs := make(map[string]bool)
	errs = append(errs, validateFields(schema.Fields, locRefs, fieldRefs)...)

	bedRefs := make(map[string]bool)
	errs = append(errs, validateBeds(schema.Beds, fieldRefs, bedRefs)...)

	errs = append(errs, validatePlantings(schema.Plantings, bedRefs)...)

	return errs
}

func validateLocations(locations []LocationImport, refs map[string]bool) []error {
	var errs []error
	for i, l := range locations {
		if l.Ref == "" {
			errs = append(errs, fmt.Errorf("locations[%d].ref is required", i))
		} else if refs[l.Ref] {
			errs = append(errs, fmt.Errorf("locations[%d]: duplicate ref %q", i, l.Ref))
		} else {
			refs[l.Ref] = true
		}
		if l.Name == "" {
			errs = append(errs, fmt.Errorf("locations[%d].name is required", i))
		}
		errs = append(errs, validateArea(fmt.Sprintf("locations[%d]", i), l.Area)...)
	}
	return errs
}

func validateFields(fields []FieldImport, locRefs, refs map[string]bool) []error {
	var errs []error
	for i, f := range fields {
		if f.Ref == "" {
			errs = append(errs, fmt.Errorf("fields[%d].ref is required", i))
		} else if refs[f.Ref] {
			errs = append(errs, fmt.Errorf("fields[%d]: duplicate ref %q", i, f.Ref))
		} else {
			refs[f.Ref] = true
		}
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("fields[%d].name is required", i))
		}
		if f.LocationRef == "" {
			errs = append(errs, fmt.Errorf("fields[%d].location_ref is required", i))
		} else if !locRefs[f.LocationRef] {
			errs = append(errs, fmt.Errorf("fields[%d].location_ref %q not found", i, f.LocationRef))
		}
		errs = append(errs, validateArea(fmt.Sprintf("fields[%d]", i), f.Area)...)
	}
	return errs
}

func validateBeds(beds []BedImport, fieldRefs, refs map[string]bool) []error {
	var errs []error
	for i, b := range beds {
		if b.Ref == "" {
			errs = append(errs, fmt.Errorf("beds[%d].ref is required", i))
		} else if refs[b.Ref] {
			errs = append(errs, fmt.Errorf("beds[%d]: duplicate ref %q", i, b.Ref))
		} else {
			refs[b.Ref] = true
		}
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("beds[%d].name is required", i))
		}
		if b.FieldRef == "" {
			errs = append(errs, fmt.Errorf("beds[%d].field_ref is required", i))
		} else if !fieldRefs[b.FieldRef] {
			errs = append(errs, fmt.Errorf("beds[%d].field_ref %q not found", i, b.FieldRef))
		}
		errs = append(errs, validateArea(fmt.Sprintf("beds[%d]", i), b.Area)...)
	}
	return errs
}

func validatePlantings(plantings []PlantingImport, bedRefs map[string]bool) []error {
	var errs []error
	for i, p := range plantings {
		if p.Crop == "" {
			errs = append(errs, fmt.Errorf("plantings[%d].crop is required", i))
		}
		if p.BedRef == "" {
			errs = append(errs, fmt.Errorf("plantings[%d].bed_ref is required", i))
		} else if !bedRefs[p.BedRef] {
			errs = append(errs, fmt.Errorf("plantings[%d].bed_ref %q not found", i, p.BedRef))
		}

		start, startErr := time.Parse(domain.DateLayout, p.StartDate)
		if p.StartDate == "" {
			errs = append(errs, fmt.Errorf("plantings[%d].start_date is required", i))
		} else if startErr != nil {
			errs = append(errs, fmt.Errorf("plantings[%d].start_date: invalid date format %q (expected YYYY-MM-DD)", i, p.StartDate))
		}
		end, endErr := time.Parse(domain.DateLayout, p.EndDate)
		if p.EndDate == "" {
			errs = append(errs, fmt.Errorf("plantings[%d].end_date is required", i))
		} else if endErr != nil {
			errs = append(errs, fmt.Errorf("plantings[%d].end_date: invalid date format %q (expected YYYY-MM-DD)", i, p.EndDate))
		}
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("plantings[%d].end_date %q is before start_date %q", i, p.EndDate, p.StartDate))
		}

		if p.Quantity != nil && (*p.Quantity < 0 || math.IsNaN(*p.Quantity) || math.IsInf(*p.Quantity, 0)) {
			errs = append(errs, fmt.Errorf("plantings[%d].quantity must be a non-negative number", i))
		}
	}
	return errs
}

func validateArea(prefix string, area *float64) []error {
	if area == nil {
		return nil
	}
	if *area < 0 || math.IsNaN(*area) || math.IsInf(*area, 0) {
		return []error{fmt.Errorf("%s.area must be a non-negative number", prefix)}
	}
	return nil
}
