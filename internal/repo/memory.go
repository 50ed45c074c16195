package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkordes/radio-stations/backend/internal/domain"
)

// MemoryStationRepo is an in-process StationRepo. Records are kept in
// insertion order; deleted ids are never handed out again because new ids
// come from domain.NewStationID.
type MemoryStationRepo struct {
	mu    sync.RWMutex
	order []domain.StationID
	byID  map[domain.StationID]domain.Station
}

// NewMemoryStationRepo returns an empty in-memory store.
func NewMemoryStationRepo() *MemoryStationRepo {
	return &MemoryStationRepo{byID: make(map[domain.StationID]domain.Station)}
}

// Insert stores station under a freshly generated id and returns it.
func (r *MemoryStationRepo) Insert(_ context.Context, station domain.Station) (domain.Station, error) {
	station.ID = domain.NewStationID()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, station.ID)
	r.byID[station.ID] = station
	return station, nil
}

// List returns a copy of every station in insertion order.
func (r *MemoryStationRepo) List(_ context.Context) ([]domain.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stations := make([]domain.Station, 0, len(r.order))
	for _, id := range r.order {
		stations = append(stations, r.byID[id])
	}
	return stations, nil
}

// GetByID returns the station with the given id.
func (r *MemoryStationRepo) GetByID(_ context.Context, id string) (domain.Station, error) {
	sid, err := domain.ParseStationID(id)
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.MemoryStationRepo.GetByID: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[sid]
	if !ok {
		return domain.Station{}, fmt.Errorf("repo.MemoryStationRepo.GetByID: %w", domain.ErrNotFound)
	}
	return s, nil
}

// Delete removes the station with the given id and returns it.
func (r *MemoryStationRepo) Delete(_ context.Context, id string) (domain.Station, error) {
	sid, err := domain.ParseStationID(id)
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.MemoryStationRepo.Delete: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[sid]
	if !ok {
		return domain.Station{}, fmt.Errorf("repo.MemoryStationRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.byID, sid)
	for i, oid := range r.order {
		if oid == sid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return s, nil
}

// Update applies the fields present in patch and returns the result.
func (r *MemoryStationRepo) Update(_ context.Context, id string, patch domain.StationPatch) (domain.Station, error) {
	sid, err := domain.ParseStationID(id)
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.MemoryStationRepo.Update: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[sid]
	if !ok {
		return domain.Station{}, fmt.Errorf("repo.MemoryStationRepo.Update: %w", domain.ErrNotFound)
	}
	s = patch.Apply(s)
	r.byID[sid] = s
	return s, nil
}

// Ping always succeeds; the store lives in process memory.
func (r *MemoryStationRepo) Ping(context.Context) error {
	return nil
}

// Reset removes every station.
func (r *MemoryStationRepo) Reset(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.byID = make(map[domain.StationID]domain.Station)
	return nil
}

// InsertMany stores stations with their own ids. A duplicate id, in the
// batch or already stored, aborts the whole batch.
func (r *MemoryStationRepo) InsertMany(_ context.Context, stations []domain.Station) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[domain.StationID]struct{}, len(stations))
	for _, s := range stations {
		if _, ok := r.byID[s.ID]; ok {
			return fmt.Errorf("repo.MemoryStationRepo.InsertMany: duplicate id %s", s.ID.Hex())
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("repo.MemoryStationRepo.InsertMany: duplicate id %s", s.ID.Hex())
		}
		seen[s.ID] = struct{}{}
	}
	for _, s := range stations {
		r.order = append(r.order, s.ID)
		r.byID[s.ID] = s
	}
	return nil
}

var (
	_ StationStore = (*MemoryStationRepo)(nil)
	_ StationStore = (*pgStationRepo)(nil)
)
