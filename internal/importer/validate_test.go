package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSchema() *ImportSchema {
	area := 2.5
	return &ImportSchema{
		Locations: []LocationImport{
			{Ref: "loc1", Name: "Home Farm", Area: &area},
		},
		Fields: []FieldImport{
			{Ref: "f1", LocationRef: "loc1", Name: "North Field"},
		},
		Beds: []BedImport{
			{Ref: "b1", FieldRef: "f1", Name: "Bed 1"},
		},
		Plantings: []PlantingImport{
			{BedRef: "b1", Crop: "Carrots", StartDate: "2026-03-05", EndDate: "2026-05-20"},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	errs := ValidateImportSchema(validSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_MissingNames(t *testing.T) {
	s := validSchema()
	s.Locations[0].Name = ""
	s.Fields[0].Name = ""
	s.Beds[0].Name = ""

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 3)
}

func TestValidateImportSchema_DuplicateRefs(t *testing.T) {
	s := validSchema()
	s.Locations = append(s.Locations, LocationImport{Ref: "loc1", Name: "Again"})

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate ref")
}

func TestValidateImportSchema_DanglingParentRefs(t *testing.T) {
	s := validSchema()
	s.Fields[0].LocationRef = "missing-loc"
	s.Beds[0].FieldRef = "missing-field"
	s.Plantings[0].BedRef = "missing-bed"

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 3)
}

func TestValidateImportSchema_BadDates(t *testing.T) {
	s := validSchema()
	s.Plantings[0].StartDate = "March 5"

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid date format")
}

func TestValidateImportSchema_EndBeforeStart(t *testing.T) {
	s := validSchema()
	s.Plantings[0].StartDate = "2026-05-20"
	s.Plantings[0].EndDate = "2026-03-05"

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "before start_date")
}

func TestValidateImportSchema_NegativeArea(t *testing.T) {
	s := validSchema()
	bad := -1.0
	s.Beds[0].Area = &bad

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "area")
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	s := validSchema()
	s.Locations[0].Name = ""
	s.Plantings[0].Crop = ""
	s.Plantings[0].EndDate = ""

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 3)
}
