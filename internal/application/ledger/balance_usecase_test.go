package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appledger "github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type balanceFixture struct {
	balanceUC  *appledger.BalanceUseCase
	movementUC *appledger.MovementUseCase
	store      *memory.Store
}

// newBalanceFixture monta ambos casos de uso sobre el mismo store, con P1 y
// las ubicaciones A y B creadas.
func newBalanceFixture(t *testing.T) *balanceFixture {
	t.Helper()
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	txRunner := memory.NewTxRunner(store)

	require.NoError(t, productRepo.Create(&entity.Product{ID: "P1", Name: "Widget"}))
	require.NoError(t, locationRepo.Create(&entity.Location{ID: "A", Name: "Bodega A"}))
	require.NoError(t, locationRepo.Create(&entity.Location{ID: "B", Name: "Bodega B"}))

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return &balanceFixture{
		balanceUC:  appledger.NewBalanceUseCase(txRunner, productRepo, locationRepo, log),
		movementUC: appledger.NewMovementUseCase(txRunner, memory.NewMovementRepository(store), productRepo, locationRepo),
		store:      store,
	}
}

func (f *balanceFixture) record(t *testing.T, id, from, to string, qty int64) {
	t.Helper()
	_, err := f.movementUC.Record(context.Background(), dto.RecordMovementRequest{
		MovementID:   id,
		FromLocation: from,
		ToLocation:   to,
		ProductID:    "P1",
		Qty:          qty,
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_RecepcionTrasladoYVenta(t *testing.T) {
	f := newBalanceFixture(t)
	ctx := context.Background()

	f.record(t, "M1", "", "A", 10) // recepción externa en A
	f.record(t, "M2", "A", "B", 4) // traslado A → B
	f.record(t, "M3", "B", "", 6)  // venta desde B

	out, err := f.balanceUC.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	// Orden: producto, luego ubicación
	assert.Equal(t, "A", out.Items[0].Location.LocationID)
	assert.Equal(t, int64(6), out.Items[0].Qty)
	assert.Equal(t, "B", out.Items[1].Location.LocationID)
	assert.Equal(t, int64(-2), out.Items[1].Qty, "vender más de lo recibido deja neto negativo")

	// Las entidades llegan resueltas con sus registros completos
	assert.Equal(t, "Widget", out.Items[0].Product.Name)
	assert.Equal(t, "Bodega A", out.Items[0].Location.Name)
}

func TestSnapshot_OmiteNetosEnCero(t *testing.T) {
	f := newBalanceFixture(t)
	ctx := context.Background()

	f.record(t, "M1", "", "A", 10)
	f.record(t, "M2", "A", "", 10) // deja A exactamente en cero

	out, err := f.balanceUC.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, out.Items, "los netos en cero no aparecen en la vista plana")
}

func TestSnapshot_EsIdempotente(t *testing.T) {
	f := newBalanceFixture(t)
	ctx := context.Background()

	f.record(t, "M1", "", "A", 10)
	f.record(t, "M2", "A", "B", 4)

	first, err := f.balanceUC.Snapshot(ctx)
	require.NoError(t, err)
	second, err := f.balanceUC.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Items, second.Items, "leer el balance no muta estado")
}

func TestSnapshot_OmiteFilasConEntidadBorrada(t *testing.T) {
	f := newBalanceFixture(t)
	ctx := context.Background()

	f.record(t, "M1", "", "A", 10)
	f.record(t, "M2", "", "B", 5)

	// Simula un borrado fuera de banda de la ubicación B: el libro conserva
	// la referencia pero la entidad ya no se puede resolver.
	f.store.DeleteLocation("B")

	out, err := f.balanceUC.Snapshot(ctx)
	require.NoError(t, err, "una referencia irresoluble no es un error del reporte")
	require.Len(t, out.Items, 1)
	assert.Equal(t, "A", out.Items[0].Location.LocationID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Raw
// ──────────────────────────────────────────────────────────────────────────────

func TestRaw_ConservaCeros(t *testing.T) {
	f := newBalanceFixture(t)
	ctx := context.Background()

	f.record(t, "M1", "", "A", 10)
	f.record(t, "M2", "A", "", 10)

	out, err := f.balanceUC.Raw(ctx)
	require.NoError(t, err)

	require.Contains(t, out, "P1")
	qty, ok := out["P1"]["A"]
	require.True(t, ok, "la forma cruda conserva las entradas en cero")
	assert.Equal(t, int64(0), qty)
}

func TestRaw_NoResuelveEntidades(t *testing.T) {
	f := newBalanceFixture(t)
	ctx := context.Background()

	f.record(t, "M1", "", "A", 10)
	f.store.DeleteLocation("A")

	out, err := f.balanceUC.Raw(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), out["P1"]["A"], "la forma cruda opera solo con IDs")
}

func TestRaw_LibroVacio(t *testing.T) {
	f := newBalanceFixture(t)

	out, err := f.balanceUC.Raw(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

type stubPDFGenerator struct {
	rows []dto.BalanceRow
}

func (g *stubPDFGenerator) GenerateBalancePDF(_ context.Context, rows []dto.BalanceRow, _ time.Time) ([]byte, error) {
	g.rows = rows
	return []byte("%PDF-stub"), nil
}

func TestReportPDF_GeneraDesdeElSnapshot(t *testing.T) {
	f := newBalanceFixture(t)
	ctx := context.Background()

	f.record(t, "M1", "", "A", 10)
	f.record(t, "M2", "A", "B", 4)

	gen := &stubPDFGenerator{}
	pdfUC := appledger.NewReportPDFUseCase(f.balanceUC, gen)

	doc, err := pdfUC.Generate(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	assert.Len(t, gen.rows, 2, "el PDF recibe las mismas filas del snapshot")
}
