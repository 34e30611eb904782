package service

import (
	"context"
	"fmt"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
)

type bedService struct {
	beds   repository.BedRepo
	fields repository.FieldRepo
}

func NewBedService(beds repository.BedRepo, fields repository.FieldRepo) BedService {
	return &bedService{beds: beds, fields: fields}
}

func (s *bedService) Create(ctx context.Context, b *domain.Bed) error {
	if b.Name == "" {
		return fmt.Errorf("bed name is required")
	}
	if _, err := s.fields.GetByID(ctx, b.FieldID); err != nil {
		return fmt.Errorf("resolving field: %w", err)
	}
	b.Area = domain.SanitizeArea(b.Area)
	return s.beds.Create(ctx, b)
}

func (s *bedService) GetByID(ctx context.Context, id int64) (*domain.Bed, error) {
	return s.beds.GetByID(ctx, id)
}

func (s *bedService) List(ctx context.Context) ([]domain.Bed, error) {
	return s.beds.List(ctx)
}

func (s *bedService) ListByField(ctx context.Context, fieldID int64) ([]domain.Bed, error) {
	return s.beds.ListByField(ctx, fieldID)
}

func (s *bedService) Update(ctx context.Context, b *domain.Bed) error {
	if b.Name == "" {
		return fmt.Errorf("bed name is required")
	}
	b.Area = domain.SanitizeArea(b.Area)
	return s.beds.Update(ctx, b)
}

func (s *bedService) Delete(ctx context.Context, id int64) error {
	if _, err := s.beds.GetByID(ctx, id); err != nil {
		return err
	}
	return s.beds.Delete(ctx, id)
}
