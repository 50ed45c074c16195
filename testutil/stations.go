package testutil

import (
	"context"
	"testing"

	"github.com/pkordes/radio-stations/backend/internal/domain"
	"github.com/pkordes/radio-stations/backend/internal/repo"
)

// StationFixtures returns three stations with fresh ids. Exactly one of them
// is marked actual.
func StationFixtures() []domain.Station {
	return []domain.Station{
		{ID: domain.NewStationID(), Name: "First test station", Freq: 123.456, Actual: false},
		{ID: domain.NewStationID(), Name: "Second test station", Freq: 987.456, Actual: true},
		{ID: domain.NewStationID(), Name: "Third test station", Freq: 1987.456, Actual: false},
	}
}

// SeedStations clears the store and loads a fresh StationFixtures set,
// returning the seeded records. Call it at the start of every scenario so
// no state leaks between tests.
func SeedStations(t *testing.T, s repo.Seeder) []domain.Station {
	t.Helper()
	ctx := context.Background()

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("testutil.SeedStations: reset: %v", err)
	}
	fixtures := StationFixtures()
	if err := s.InsertMany(ctx, fixtures); err != nil {
		t.Fatalf("testutil.SeedStations: insert: %v", err)
	}
	return fixtures
}
