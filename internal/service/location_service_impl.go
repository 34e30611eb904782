package service

import (
	"context"
	"fmt"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
)

type locationService struct {
	locations repository.LocationRepo
}

func NewLocationService(locations repository.LocationRepo) LocationService {
	return &locationService{locations: locations}
}

func (s *locationService) Create(ctx context.Context, l *domain.Location) error {
	if l.Name == "" {
		return fmt.Errorf("location name is required")
	}
	l.Area = domain.SanitizeArea(l.Area)
	return s.locations.Create(ctx, l)
}

func (s *locationService) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	return s.locations.GetByID(ctx, id)
}

func (s *locationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx)
}

func (s *locationService) Update(ctx context.Context, l *domain.Location) error {
	if l.Name == "" {
		return fmt.Errorf("location name is required")
	}
	l.Area = domain.SanitizeArea(l.Area)
	return s.locations.Update(ctx, l)
}

func (s *locationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.locations.GetByID(ctx, id); err != nil {
		return err
	}
	return s.locations.Delete(ctx, id)
}
