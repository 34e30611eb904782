package service

import (
	"context"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/importer"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/timeline"
)

type LocationService interface {
	Create(ctx context.Context, l *domain.Location) error
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
	Update(ctx context.Context, l *domain.Location) error
	Delete(ctx context.Context, id int64) error
}

type FieldService interface {
	Create(ctx context.Context, f *domain.Field) error
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	List(ctx context.Context) ([]domain.Field, error)
	ListByLocation(ctx context.Context, locationID int64) ([]domain.Field, error)
	Update(ctx context.Context, f *domain.Field) error
	Delete(ctx context.Context, id int64) error
}

type BedService interface {
	Create(ctx context.Context, b *domain.Bed) error
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)
	List(ctx context.Context) ([]domain.Bed, error)
	ListByField(ctx context.Context, fieldID int64) ([]domain.Bed, error)
	Update(ctx context.Context, b *domain.Bed) error
	Delete(ctx context.Context, id int64) error
}

type PlantingService interface {
	Create(ctx context.Context, p *domain.Planting) error
	GetByID(ctx context.Context, id int64) (*domain.Planting, error)
	List(ctx context.Context) ([]domain.Planting, error)
	ListDetails(ctx context.Context) ([]repository.PlantingDetail, error)
	Update(ctx context.Context, p *domain.Planting) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleQuery selects the year, column granularity, row ordering, and the
// ui-state scope whose expansion set drives row visibility.
type ScheduleQuery struct {
	Year        int
	Granularity timeline.Granularity
	Sort        timeline.SortSpec
	Scope       string
	ExpandAll   bool
}

// BarEntry pairs a projected bar with the planting it renders.
type BarEntry struct {
	Planting domain.Planting
	Bar      timeline.Bar
}

// Schedule is a fully resolved yearly timeline: visible rows, grid columns,
// and the projected bars per bed row id.
type Schedule struct {
	Year        int
	Granularity timeline.Granularity
	Columns     []timeline.Column
	Rows        []timeline.Row
	Bars        map[string][]BarEntry
}

type ScheduleService interface {
	Build(ctx context.Context, q ScheduleQuery) (*Schedule, error)
	// ToggleRow flips one row's expansion in the given scope and persists it.
	ToggleRow(ctx context.Context, scope, rowID string) error
	// ExpandAll marks every location and field row expanded in the scope.
	ExpandAll(ctx context.Context, scope string) error
}

// ImportResult holds the outcome of a farm plan import.
type ImportResult struct {
	LocationCount int
	FieldCount    int
	BedCount      int
	PlantingCount int
}

type ImportService interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
