package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/timeline"
)

type scheduleService struct {
	locations repository.LocationRepo
	fields    repository.FieldRepo
	beds      repository.BedRepo
	plantings repository.PlantingRepo
	uiState   timeline.KVStore
}

func NewScheduleService(
	locations repository.LocationRepo,
	fields repository.FieldRepo,
	beds repository.BedRepo,
	plantings repository.PlantingRepo,
	uiState timeline.KVStore,
) ScheduleService {
	return &scheduleService{
		locations: locations,
		fields:    fields,
		beds:      beds,
		plantings: plantings,
		uiState:   uiState,
	}
}

// Build loads the whole farm, flattens the hierarchy under the scope's
// expansion set, and projects every planting of every visible bed onto the
// year's grid. Plantings whose bars fall outside the year are dropped here,
// so renderers only see drawable bars.
func (s *scheduleService) Build(ctx context.Context, q ScheduleQuery) (*Schedule, error) {
	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading locations: %w", err)
	}
	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fields: %w", err)
	}
	beds, err := s.beds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading beds: %w", err)
	}

	expanded := timeline.NewExpansionState(s.uiState, q.Scope)
	if q.ExpandAll || !expanded.HasPersistedState() {
		expanded.ExpandAll(expandableRowIDs(locations, fields))
	}

	rows := timeline.Flatten(locations, fields, beds, expanded, q.Sort)
	columns := timeline.BuildColumns(q.Year, q.Granularity)

	plantings, err := s.plantings.ListIntersectingYear(ctx, q.Year)
	if err != nil {
		return nil, fmt.Errorf("loading plantings: %w", err)
	}
	byBed := make(map[int64][]domain.Planting)
	for _, p := range plantings {
		byBed[p.BedID] = append(byBed[p.BedID], p)
	}

	bars := make(map[string][]BarEntry)
	for _, row := range rows {
		bedRow, ok := row.(timeline.BedRow)
		if !ok {
			continue
		}
		for _, p := range byBed[bedRow.Bed.ID] {
			bar := timeline.Project(p, q.Year, q.Granularity)
			if bar == nil {
				continue
			}
			bars[row.RowID()] = append(bars[row.RowID()], BarEntry{Planting: p, Bar: *bar})
		}
		sort.SliceStable(bars[row.RowID()], func(i, j int) bool {
			a, b := bars[row.RowID()][i], bars[row.RowID()][j]
			if !a.Planting.StartDate.Equal(b.Planting.StartDate) {
				return a.Planting.StartDate.Before(b.Planting.StartDate)
			}
			return a.Planting.ID < b.Planting.ID
		})
	}

	return &Schedule{
		Year:        q.Year,
		Granularity: q.Granularity,
		Columns:     columns,
		Rows:        rows,
		Bars:        bars,
	}, nil
}

func (s *scheduleService) ToggleRow(ctx context.Context, scope, rowID string) error {
	_ = ctx
	expanded := timeline.NewExpansionState(s.uiState, scope)
	expanded.Toggle(rowID)
	return nil
}

func (s *scheduleService) ExpandAll(ctx context.Context, scope string) error {
	locations, err := s.locations.List(ctx)
	if err != nil {
		return fmt.Errorf("loading locations: %w", err)
	}
	fields, err := s.fields.List(ctx)
	if err != nil {
		return fmt.Errorf("loading fields: %w", err)
	}
	expanded := timeline.NewExpansionState(s.uiState, scope)
	expanded.ExpandAll(expandableRowIDs(locations, fields))
	return nil
}

func expandableRowIDs(locations []domain.Location, fields []domain.Field) []string {
	ids := make([]string, 0, len(locations)+len(fields))
	for _, l := range locations {
		ids = append(ids, timeline.LocationRowID(l.ID))
	}
	for _, f := range fields {
		ids = append(ids, timeline.FieldRowID(f.ID))
	}
	return ids
}
