package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for farm plan import.
type ImportSchema struct {
	Locations []LocationImport `json:"locations"`
	Fields    []FieldImport    `json:"fields"`
	Beds      []BedImport      `json:"beds"`
	Plantings []PlantingImport `json:"plantings,omitempty"`
}

// LocationImport defines a location in the import file. Refs are file-local
// handles used to link children; real ids are assigned on insert.
type LocationImport struct {
	Ref   string   `json:"ref"`
	Name  string   `json:"name"`
	Area  *float64 `json:"area,omitempty"`
	Notes string   `json:"notes,omitempty"`
}

// FieldImport defines a field in the import file.
type FieldImport struct {
	Ref         string   `json:"ref"`
	LocationRef string   `json:"location_ref"`
	Name        string   `json:"name"`
	Area        *float64 `json:"area,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// BedImport defines a bed in the import file.
type BedImport struct {
	Ref      string   `json:"ref"`
	FieldRef string   `json:"field_ref"`
	Name     string   `json:"name"`
	Area     *float64 `json:"area,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// PlantingImport defines a planting in the import file.
type PlantingImport struct {
	BedRef    string   `json:"bed_ref"`
	Crop      string   `json:"crop"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// LoadImportSchema reads and parses a farm plan import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
