package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

func seedDashboardStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	movementRepo := memory.NewMovementRepository(store)

	require.NoError(t, productRepo.Create(&entity.Product{ID: "P1", Name: "Widget"}))
	require.NoError(t, productRepo.Create(&entity.Product{ID: "P2", Name: "Gadget"}))
	require.NoError(t, locationRepo.Create(&entity.Location{ID: "A", Name: "Bodega A"}))
	require.NoError(t, locationRepo.Create(&entity.Location{ID: "B", Name: "Bodega B"}))

	// M1: externo → A, M2: A → B, M3: B → externo
	require.NoError(t, movementRepo.Create(&entity.Movement{ID: "M1", ToLocation: "A", ProductID: "P1", Qty: 10}))
	require.NoError(t, movementRepo.Create(&entity.Movement{ID: "M2", FromLocation: "A", ToLocation: "B", ProductID: "P1", Qty: 4}))
	require.NoError(t, movementRepo.Create(&entity.Movement{ID: "M3", FromLocation: "B", ProductID: "P2", Qty: 6}))
	return store
}

func TestDashboard_Contadores(t *testing.T) {
	store := seedDashboardStore(t)
	uc := usecase.NewDashboardUseCase(memory.NewReportRepository(store))

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.Products)
	assert.Equal(t, int64(2), out.Locations)
	assert.Equal(t, int64(3), out.Movements)

	// distinct(to) = {A, B, ""} y distinct(from) = {"", A, B}: cada lado se
	// cuenta por separado, sin deduplicar entre ambos, y la frontera externa
	// cuenta como un valor distinto cuando aparece.
	assert.Equal(t, int64(6), out.ActiveLocations)
}

func TestDashboard_SinMovimientos(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewDashboardUseCase(memory.NewReportRepository(store))

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.Movements)
	assert.Equal(t, int64(0), out.ActiveLocations)
}

type failingReportRepo struct {
	err error
}

func (r *failingReportRepo) GetEntityCounts(context.Context) (*repository.EntityCounts, error) {
	return nil, r.err
}

func (r *failingReportRepo) GetActiveLocations(context.Context) (int64, error) {
	return 0, r.err
}

func TestDashboard_PropagaErrorDelRepositorio(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	uc := usecase.NewDashboardUseCase(&failingReportRepo{err: repoErr})

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}
