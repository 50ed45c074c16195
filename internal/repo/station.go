// Package repo contains all data access logic for the station registry.
// StationRepo is the store boundary; it has a Postgres implementation for
// production and an in-memory one for tests and local runs.
// No business logic lives here — only storage and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/radio-stations/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// StationRepo defines the persistence operations for Stations.
// Every method taking an id string returns an error wrapping
// domain.ErrInvalidID when the id is not a well-formed StationID.
type StationRepo interface {
	// Insert stores a new station, assigning it a fresh id, and returns
	// the persisted record. Any ID already set on station is ignored.
	Insert(ctx context.Context, station domain.Station) (domain.Station, error)

	// List returns every station in insertion order.
	List(ctx context.Context) ([]domain.Station, error)

	// GetByID returns the station with the given id.
	// Returns domain.ErrNotFound if no such station exists.
	GetByID(ctx context.Context, id string) (domain.Station, error)

	// Delete removes a station and returns the record as it was.
	// Returns domain.ErrNotFound if no such station exists.
	Delete(ctx context.Context, id string) (domain.Station, error)

	// Update writes the non-nil patch fields and returns the updated record.
	// Returns domain.ErrNotFound if no such station exists.
	Update(ctx context.Context, id string, patch domain.StationPatch) (domain.Station, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// Seeder is implemented by stores that support wholesale reset and seeding.
// Tests use it to rebuild a known fixture before every scenario.
type Seeder interface {
	// Reset removes every station.
	Reset(ctx context.Context) error

	// InsertMany stores stations with their caller-supplied ids.
	InsertMany(ctx context.Context, stations []domain.Station) error
}

// StationStore is a StationRepo that can also be reset and seeded.
type StationStore interface {
	StationRepo
	Seeder
}

// pgStationRepo is the Postgres implementation of StationStore.
type pgStationRepo struct {
	db db
}

// NewStationRepo constructs a Postgres StationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStationRepo(db db) StationStore {
	return &pgStationRepo{db: db}
}

// Insert adds a new station row. The id is generated here rather than by
// a column default so its format matches domain.StationID exactly.
func (r *pgStationRepo) Insert(ctx context.Context, station domain.Station) (domain.Station, error) {
	const q = `
		INSERT INTO stations (id, name, freq, actual)
		VALUES (@id, @name, @freq, @actual)
		RETURNING id, name, freq, actual`

	id := domain.NewStationID()
	args := pgx.NamedArgs{
		"id":     id[:],
		"name":   station.Name,
		"freq":   station.Freq,
		"actual": station.Actual,
	}

	result, err := scanStation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.Insert: %w", err)
	}
	return result, nil
}

// List returns all stations ordered by insertion sequence.
func (r *pgStationRepo) List(ctx context.Context) ([]domain.Station, error) {
	const q = `
		SELECT id, name, freq, actual
		FROM stations
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.StationRepo.List: %w", err)
	}
	defer rows.Close()

	stations := []domain.Station{}
	for rows.Next() {
		s, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StationRepo.List: scan: %w", err)
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StationRepo.List: rows: %w", err)
	}
	return stations, nil
}

// GetByID retrieves a station by primary key.
func (r *pgStationRepo) GetByID(ctx context.Context, id string) (domain.Station, error) {
	const q = `
		SELECT id, name, freq, actual
		FROM stations
		WHERE id = @id`

	sid, err := domain.ParseStationID(id)
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.GetByID: %w", err)
	}

	result, err := scanStation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": sid[:]}))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.GetByID: %w", err)
	}
	return result, nil
}

// Delete removes a station and returns the deleted row in the same statement.
func (r *pgStationRepo) Delete(ctx context.Context, id string) (domain.Station, error) {
	const q = `
		DELETE FROM stations
		WHERE id = @id
		RETURNING id, name, freq, actual`

	sid, err := domain.ParseStationID(id)
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.Delete: %w", err)
	}

	result, err := scanStation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": sid[:]}))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.Delete: %w", err)
	}
	return result, nil
}

// Update writes only the supplied fields. A nil pointer binds to NULL and
// COALESCE keeps the stored value, so the read-modify-write is one statement.
func (r *pgStationRepo) Update(ctx context.Context, id string, patch domain.StationPatch) (domain.Station, error) {
	const q = `
		UPDATE stations
		SET name   = COALESCE(@name, name),
		    freq   = COALESCE(@freq, freq),
		    actual = COALESCE(@actual, actual)
		WHERE id = @id
		RETURNING id, name, freq, actual`

	sid, err := domain.ParseStationID(id)
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.Update: %w", err)
	}

	args := pgx.NamedArgs{
		"id":     sid[:],
		"name":   patch.Name,
		"freq":   patch.Freq,
		"actual": patch.Actual,
	}

	result, err := scanStation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.Update: %w", err)
	}
	return result, nil
}

// Ping runs a trivial query. It works for both pools and transactions.
func (r *pgStationRepo) Ping(ctx context.Context) error {
	var one int
	if err := r.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("repo.StationRepo.Ping: %w", err)
	}
	return nil
}

// Reset deletes every station row.
func (r *pgStationRepo) Reset(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM stations`); err != nil {
		return fmt.Errorf("repo.StationRepo.Reset: %w", err)
	}
	return nil
}

// InsertMany bulk-loads stations with COPY, keeping their ids.
func (r *pgStationRepo) InsertMany(ctx context.Context, stations []domain.Station) error {
	rows := make([][]any, len(stations))
	for i, s := range stations {
		id := s.ID
		rows[i] = []any{id[:], s.Name, s.Freq, s.Actual}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"stations"},
		[]string{"id", "name", "freq", "actual"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("repo.StationRepo.InsertMany: %w", err)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanStation to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanStation maps a single database row into a domain.Station.
func scanStation(s scanner) (domain.Station, error) {
	var (
		st  domain.Station
		raw []byte
	)
	err := s.Scan(&raw, &st.Name, &st.Freq, &st.Actual)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Station{}, domain.ErrNotFound
		}
		return domain.Station{}, err
	}
	if len(raw) != len(st.ID) {
		return domain.Station{}, fmt.Errorf("scan station: id has %d bytes", len(raw))
	}
	copy(st.ID[:], raw)
	return st, nil
}
