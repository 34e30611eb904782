package service

import (
	"context"
	"fmt"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/db"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/importer"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

// NewImportService creates the transactional farm-plan importer. All writes
// happen inside a single transaction; a failed import leaves the database
// untouched.
func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	plan, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	result := &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		locations := repository.NewSQLiteLocationRepo(tx)
		fields := repository.NewSQLiteFieldRepo(tx)
		beds := repository.NewSQLiteBedRepo(tx)
		plantings := repository.NewSQLitePlantingRepo(tx)

		locationIDs := make(map[string]int64)
		for _, pl := range plan.Locations {
			if err := locations.Create(ctx, pl.Location); err != nil {
				return fmt.Errorf("creating location %q: %w", pl.Location.Name, err)
			}
			locationIDs[pl.Ref] = pl.Location.ID
		}

		fieldIDs := make(map[string]int64)
		for _, pf := range plan.Fields {
			pf.Field.LocationID = locationIDs[pf.LocationRef]
			if err := fields.Create(ctx, pf.Field); err != nil {
				return fmt.Errorf("creating field %q: %w", pf.Field.Name, err)
			}
			fieldIDs[pf.Ref] = pf.Field.ID
		}

		bedIDs := make(map[string]int64)
		for _, pb := range plan.Beds {
			pb.Bed.FieldID = fieldIDs[pb.FieldRef]
			if err := beds.Create(ctx, pb.Bed); err != nil {
				return fmt.Errorf("creating bed %q: %w", pb.Bed.Name, err)
			}
			bedIDs[pb.Ref] = pb.Bed.ID
		}

		for _, pp := range plan.Plantings {
			pp.Planting.BedID = bedIDs[pp.BedRef]
			if err := plantings.Create(ctx, pp.Planting); err != nil {
				return fmt.Errorf("creating planting %q: %w", pp.Planting.Crop, err)
			}
		}

		result.LocationCount = len(plan.Locations)
		result.FieldCount = len(plan.Fields)
		result.BedCount = len(plan.Beds)
		result.PlantingCount = len(plan.Plantings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
