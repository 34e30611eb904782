package service

import (
	"context"
	"fmt"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
)

type fieldService struct {
	fields    repository.FieldRepo
	locations repository.LocationRepo
}

func NewFieldService(fields repository.FieldRepo, locations repository.LocationRepo) FieldService {
	return &fieldService{fields: fields, locations: locations}
}

func (s *fieldService) Create(ctx context.Context, f *domain.Field) error {
	if f.Name == "" {
		return fmt.Errorf("field name is required")
	}
	if _, err := s.locations.GetByID(ctx, f.LocationID); err != nil {
		return fmt.Errorf("resolving location: %w", err)
	}
	f.Area = domain.SanitizeArea(f.Area)
	return s.fields.Create(ctx, f)
}

func (s *fieldService) GetByID(ctx context.Context, id int64) (*domain.Field, error) {
	return s.fields.GetByID(ctx, id)
}

func (s *fieldService) List(ctx context.Context) ([]domain.Field, error) {
	return s.fields.List(ctx)
}

func (s *fieldService) ListByLocation(ctx context.Context, locationID int64) ([]domain.Field, error) {
	return s.fields.ListByLocation(ctx, locationID)
}

func (s *fieldService) Update(ctx context.Context, f *domain.Field) error {
	if f.Name == "" {
		return fmt.Errorf("field name is required")
	}
	f.Area = domain.SanitizeArea(f.Area)
	return s.fields.Update(ctx, f)
}

func (s *fieldService) Delete(ctx context.Context, id int64) error {
	if _, err := s.fields.GetByID(ctx, id); err != nil {
		return err
	}
	return s.fields.Delete(ctx, id)
}
