package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/radio-stations/backend/internal/domain"
	"github.com/pkordes/radio-stations/backend/internal/repo"
	"github.com/pkordes/radio-stations/backend/internal/service"
)

// mockStationRepo is a hand-written test double for repo.StationRepo.
// Each method is a function field; set only the ones your test needs.
type mockStationRepo struct {
	insert  func(ctx context.Context, s domain.Station) (domain.Station, error)
	list    func(ctx context.Context) ([]domain.Station, error)
	getByID func(ctx context.Context, id string) (domain.Station, error)
	delete  func(ctx context.Context, id string) (domain.Station, error)
	update  func(ctx context.Context, id string, p domain.StationPatch) (domain.Station, error)
	ping    func(ctx context.Context) error
}

func (m *mockStationRepo) Insert(ctx context.Context, s domain.Station) (domain.Station, error) {
	return m.insert(ctx, s)
}
func (m *mockStationRepo) List(ctx context.Context) ([]domain.Station, error) {
	return m.list(ctx)
}
func (m *mockStationRepo) GetByID(ctx context.Context, id string) (domain.Station, error) {
	return m.getByID(ctx, id)
}
func (m *mockStationRepo) Delete(ctx context.Context, id string) (domain.Station, error) {
	return m.delete(ctx, id)
}
func (m *mockStationRepo) Update(ctx context.Context, id string, p domain.StationPatch) (domain.Station, error) {
	return m.update(ctx, id, p)
}
func (m *mockStationRepo) Ping(ctx context.Context) error {
	return m.ping(ctx)
}

// compile-time check: mockStationRepo must satisfy repo.StationRepo.
var _ repo.StationRepo = (*mockStationRepo)(nil)

// failIfCalled returns a repo whose mutating methods fail the test.
// Validation tests use it to prove the store was never touched.
func failIfCalled(t *testing.T) *mockStationRepo {
	return &mockStationRepo{
		insert: func(context.Context, domain.Station) (domain.Station, error) {
			t.Fatal("Insert must not be called")
			return domain.Station{}, nil
		},
		update: func(context.Context, string, domain.StationPatch) (domain.Station, error) {
			t.Fatal("Update must not be called")
			return domain.Station{}, nil
		},
	}
}

func ptr[T any](v T) *T { return &v }

// ---- Create ----------------------------------------------------------------

func TestStationService_Create_Valid(t *testing.T) {
	assigned := domain.NewStationID()
	svc := service.NewStationService(&mockStationRepo{
		insert: func(_ context.Context, s domain.Station) (domain.Station, error) {
			assert.True(t, s.ID.IsZero(), "service must not pass a caller id to the store")
			s.ID = assigned
			return s, nil
		},
	})

	got, err := svc.Create(context.Background(), domain.Station{
		ID: domain.NewStationID(), Name: "Test station name", Freq: 666.999,
	})

	require.NoError(t, err)
	assert.Equal(t, assigned, got.ID)
	assert.Equal(t, "Test station name", got.Name)
	assert.Equal(t, 666.999, got.Freq)
	assert.False(t, got.Actual)
}

func TestStationService_Create_ZeroFreqAllowed(t *testing.T) {
	svc := service.NewStationService(&mockStationRepo{
		insert: func(_ context.Context, s domain.Station) (domain.Station, error) { return s, nil },
	})

	_, err := svc.Create(context.Background(), domain.Station{Name: "Silent", Freq: 0})

	require.NoError(t, err)
}

func TestStationService_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		station domain.Station
		msg     string
	}{
		{"empty name", domain.Station{Name: "", Freq: 1}, "name is required"},
		{"blank name", domain.Station{Name: "   ", Freq: 1}, "name is required"},
		{"NaN freq", domain.Station{Name: "x", Freq: math.NaN()}, "freq must be a finite number"},
		{"Inf freq", domain.Station{Name: "x", Freq: math.Inf(1)}, "freq must be a finite number"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewStationService(failIfCalled(t))

			_, err := svc.Create(context.Background(), tc.station)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestStationService_Create_RepoError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := service.NewStationService(&mockStationRepo{
		insert: func(context.Context, domain.Station) (domain.Station, error) { return domain.Station{}, boom },
	})

	_, err := svc.Create(context.Background(), domain.Station{Name: "x", Freq: 1})

	assert.True(t, errors.Is(err, boom))
}

// ---- Read / Delete ---------------------------------------------------------

func TestStationService_GetByID_PropagatesKinds(t *testing.T) {
	for _, kind := range []error{domain.ErrInvalidID, domain.ErrNotFound} {
		svc := service.NewStationService(&mockStationRepo{
			getByID: func(context.Context, string) (domain.Station, error) { return domain.Station{}, kind },
		})

		_, err := svc.GetByID(context.Background(), "123")

		assert.True(t, errors.Is(err, kind))
	}
}

func TestStationService_List(t *testing.T) {
	want := []domain.Station{{ID: domain.NewStationID(), Name: "a", Freq: 1}}
	svc := service.NewStationService(&mockStationRepo{
		list: func(context.Context) ([]domain.Station, error) { return want, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStationService_Delete(t *testing.T) {
	st := domain.Station{ID: domain.NewStationID(), Name: "gone", Freq: 2}
	svc := service.NewStationService(&mockStationRepo{
		delete: func(_ context.Context, id string) (domain.Station, error) {
			assert.Equal(t, st.ID.Hex(), id)
			return st, nil
		},
	})

	got, err := svc.Delete(context.Background(), st.ID.Hex())

	require.NoError(t, err)
	assert.Equal(t, st, got)
}

// ---- Update ----------------------------------------------------------------

func TestStationService_Update_PassesPatch(t *testing.T) {
	id := domain.NewStationID().Hex()
	svc := service.NewStationService(&mockStationRepo{
		update: func(_ context.Context, gotID string, p domain.StationPatch) (domain.Station, error) {
			assert.Equal(t, id, gotID)
			require.NotNil(t, p.Actual)
			assert.True(t, *p.Actual)
			assert.Nil(t, p.Name)
			return domain.Station{Name: "kept", Actual: true}, nil
		},
	})

	got, err := svc.Update(context.Background(), id, domain.StationPatch{Actual: ptr(true)})

	require.NoError(t, err)
	assert.True(t, got.Actual)
}

func TestStationService_Update_ValidatesPresentFields(t *testing.T) {
	svc := service.NewStationService(failIfCalled(t))

	_, err := svc.Update(context.Background(), domain.NewStationID().Hex(), domain.StationPatch{Name: ptr("")})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = svc.Update(context.Background(), domain.NewStationID().Hex(), domain.StationPatch{Freq: ptr(math.NaN())})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestStationService_Update_EmptyPatchIsLookup(t *testing.T) {
	st := domain.Station{ID: domain.NewStationID(), Name: "same", Freq: 3}
	repoMock := failIfCalled(t)
	repoMock.getByID = func(context.Context, string) (domain.Station, error) { return st, nil }
	svc := service.NewStationService(repoMock)

	got, err := svc.Update(context.Background(), st.ID.Hex(), domain.StationPatch{})

	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestStationService_Ready(t *testing.T) {
	svc := service.NewStationService(&mockStationRepo{
		ping: func(context.Context) error { return errors.New("down") },
	})

	assert.Error(t, svc.Ready(context.Background()))
}
