package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// Plan holds converted domain objects with their file-local refs still
// attached, so persistence can resolve parent ids after each insert.
type Plan struct {
	Locations []PlanLocation
	Fields    []PlanField
	Beds      []PlanBed
	Plantings []PlanPlanting
}

type PlanLocation struct {
	Ref      string
	Location *domain.Location
}

type PlanField struct {
	Ref         string
	LocationRef string
	Field       *domain.Field
}

type PlanBed struct {
	Ref      string
	FieldRef string
	Bed      *domain.Bed
}

type PlanPlanting struct {
	BedRef   string
	Planting *domain.Planting
}

// Convert transforms a validated ImportSchema into domain objects ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema is
// valid.
func Convert(schema *ImportSchema) (*Plan, error) {
	plan := &Plan{}

	for _, l := range schema.Locations {
		plan.Locations = append(plan.Locations, PlanLocation{
			Ref: l.Ref,
			Location: &domain.Location{
				Name:  l.Name,
				Area:  domain.SanitizeArea(l.Area),
				Notes: l.Notes,
			},
		})
	}

	for _, f := range schema.Fields {
		plan.Fields = append(plan.Fields, PlanField{
			Ref:         f.Ref,
			LocationRef: f.LocationRef,
			Field: &domain.Field{
				Name:  f.Name,
				Area:  domain.SanitizeArea(f.Area),
				Notes: f.Notes,
			},
		})
	}

	for _, b := range schema.Beds {
		plan.Beds = append(plan.Beds, PlanBed{
			Ref:      b.Ref,
			FieldRef: b.FieldRef,
			Bed: &domain.Bed{
				Name:  b.Name,
				Area:  domain.SanitizeArea(b.Area),
				Notes: b.Notes,
			},
		})
	}

	for i, p := range schema.Plantings {
		start, err := time.Parse(domain.DateLayout, p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("plantings[%d]: parsing start_date: %w", i, err)
		}
		end, err := time.Parse(domain.DateLayout, p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("plantings[%d]: parsing end_date: %w", i, err)
		}
		plan.Plantings = append(plan.Plantings, PlanPlanting{
			BedRef: p.BedRef,
			Planting: &domain.Planting{
				ClientRef: uuid.NewString(),
				Crop:      p.Crop,
				StartDate: start,
				EndDate:   end,
				Quantity:  domain.SanitizeArea(p.Quantity),
				Notes:     p.Notes,
			},
		})
	}

	return plan, nil
}
