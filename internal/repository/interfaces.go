package repository

import (
	"context"
	"errors"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// ErrNotFound marks lookups that matched no row. Callers test with errors.Is.
var ErrNotFound = errors.New("not found")

// PlantingDetail is a joined view of a planting with its bed and field
// context, used for listings.
type PlantingDetail struct {
	Planting  domain.Planting
	BedName   string
	FieldName string
}

type LocationRepo interface {
	Create(ctx context.Context, l *domain.Location) error
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
	Update(ctx context.Context, l *domain.Location) error
	Delete(ctx context.Context, id int64) error
}

type FieldRepo interface {
	Create(ctx context.Context, f *domain.Field) error
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	List(ctx context.Context) ([]domain.Field, error)
	ListByLocation(ctx context.Context, locationID int64) ([]domain.Field, error)
	Update(ctx context.Context, f *domain.Field) error
	Delete(ctx context.Context, id int64) error
}

type BedRepo interface {
	Create(ctx context.Context, b *domain.Bed) error
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)
	List(ctx context.Context) ([]domain.Bed, error)
	ListByField(ctx context.Context, fieldID int64) ([]domain.Bed, error)
	Update(ctx context.Context, b *domain.Bed) error
	Delete(ctx context.Context, id int64) error
}

type PlantingRepo interface {
	Create(ctx context.Context, p *domain.Planting) error
	GetByID(ctx context.Context, id int64) (*domain.Planting, error)
	List(ctx context.Context) ([]domain.Planting, error)
	ListByBed(ctx context.Context, bedID int64) ([]domain.Planting, error)
	// ListIntersectingYear returns plantings whose date range touches the
	// given calendar year.
	ListIntersectingYear(ctx context.Context, year int) ([]domain.Planting, error)
	ListDetails(ctx context.Context) ([]PlantingDetail, error)
	Update(ctx context.Context, p *domain.Planting) error
	Delete(ctx context.Context, id int64) error
}
