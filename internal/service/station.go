// Package service contains the business logic for the station registry.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No storage code lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pkordes/radio-stations/backend/internal/domain"
	"github.com/pkordes/radio-stations/backend/internal/repo"
)

// StationService implements business logic for Station operations.
type StationService struct {
	repo repo.StationRepo
}

// NewStationService constructs a StationService backed by the provided StationRepo.
func NewStationService(r repo.StationRepo) *StationService {
	return &StationService{repo: r}
}

// Create validates and persists a new station. The store assigns the id.
func (s *StationService) Create(ctx context.Context, station domain.Station) (domain.Station, error) {
	if err := validateName(station.Name); err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.Create: %w", err)
	}
	if err := validateFreq(station.Freq); err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.Create: %w", err)
	}

	station.ID = domain.NilStationID
	created, err := s.repo.Insert(ctx, station)
	if err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.Create: %w", err)
	}
	return created, nil
}

// List returns every station.
func (s *StationService) List(ctx context.Context) ([]domain.Station, error) {
	stations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StationService.List: %w", err)
	}
	return stations, nil
}

// GetByID returns a single station.
func (s *StationService) GetByID(ctx context.Context, id string) (domain.Station, error) {
	station, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.GetByID: %w", err)
	}
	return station, nil
}

// Delete removes a station and returns it as it was before deletion.
func (s *StationService) Delete(ctx context.Context, id string) (domain.Station, error) {
	station, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.Delete: %w", err)
	}
	return station, nil
}

// Update applies a partial update. Fields present in the patch get the same
// checks as on creation. An empty patch is a lookup: the current record is
// returned unchanged, or ErrNotFound.
func (s *StationService) Update(ctx context.Context, id string, patch domain.StationPatch) (domain.Station, error) {
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return domain.Station{}, fmt.Errorf("service.StationService.Update: %w", err)
		}
	}
	if patch.Freq != nil {
		if err := validateFreq(*patch.Freq); err != nil {
			return domain.Station{}, fmt.Errorf("service.StationService.Update: %w", err)
		}
	}

	if patch.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.Update: %w", err)
	}
	return updated, nil
}

// Ready reports whether the backing store is reachable.
func (s *StationService) Ready(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("service.StationService.Ready: %w", err)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}

func validateFreq(freq float64) error {
	if math.IsNaN(freq) || math.IsInf(freq, 0) {
		return fmt.Errorf("%w: freq must be a finite number", domain.ErrValidation)
	}
	return nil
}
