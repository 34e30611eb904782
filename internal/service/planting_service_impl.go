package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
)

type plantingService struct {
	plantings repository.PlantingRepo
	beds      repository.BedRepo
}

func NewPlantingService(plantings repository.PlantingRepo, beds repository.BedRepo) PlantingService {
	return &plantingService{plantings: plantings, beds: beds}
}

func (s *plantingService) Create(ctx context.Context, p *domain.Planting) error {
	if err := validatePlanting(p); err != nil {
		return err
	}
	if _, err := s.beds.GetByID(ctx, p.BedID); err != nil {
		return fmt.Errorf("resolving bed: %w", err)
	}
	if p.ClientRef == "" {
		p.ClientRef = uuid.NewString()
	}
	p.Quantity = domain.SanitizeArea(p.Quantity)
	return s.plantings.Create(ctx, p)
}

func (s *plantingService) GetByID(ctx context.Context, id int64) (*domain.Planting, error) {
	return s.plantings.GetByID(ctx, id)
}

func (s *plantingService) List(ctx context.Context) ([]domain.Planting, error) {
	return s.plantings.List(ctx)
}

func (s *plantingService) ListDetails(ctx context.Context) ([]repository.PlantingDetail, error) {
	return s.plantings.ListDetails(ctx)
}

func (s *plantingService) Update(ctx context.Context, p *domain.Planting) error {
	if err := validatePlanting(p); err != nil {
		return err
	}
	p.Quantity = domain.SanitizeArea(p.Quantity)
	return s.plantings.Update(ctx, p)
}

func (s *plantingService) Delete(ctx context.Context, id int64) error {
	if _, err := s.plantings.GetByID(ctx, id); err != nil {
		return err
	}
	return s.plantings.Delete(ctx, id)
}

func validatePlanting(p *domain.Planting) error {
	if p.Crop == "" {
		return fmt.Errorf("crop is required")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			domain.FormatDate(p.EndDate), domain.FormatDate(p.StartDate))
	}
	return nil
}
