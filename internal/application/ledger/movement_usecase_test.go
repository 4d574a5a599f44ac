package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appledger "github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newMovementFixture construye el caso de uso sobre el store en memoria con
// un producto P1 y dos ubicaciones A y B ya creados.
func newMovementFixture(t *testing.T) *appledger.MovementUseCase {
	t.Helper()
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	locationRepo := memory.NewLocationRepository(store)

	require.NoError(t, productRepo.Create(&entity.Product{ID: "P1", Name: "Widget"}))
	require.NoError(t, locationRepo.Create(&entity.Location{ID: "A", Name: "Bodega A"}))
	require.NoError(t, locationRepo.Create(&entity.Location{ID: "B", Name: "Bodega B"}))

	uc := appledger.NewMovementUseCase(
		memory.NewTxRunner(store),
		memory.NewMovementRepository(store),
		productRepo,
		locationRepo,
	)
	return uc
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Record
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_MovimientoBasico(t *testing.T) {
	uc := newMovementFixture(t)

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	out, err := uc.Record(context.Background(), dto.RecordMovementRequest{
		MovementID: "M1",
		Timestamp:  &ts,
		ToLocation: "A",
		ProductID:  "P1",
		Qty:        10,
		Notes:      "recepción",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "M1", out.MovementID)
	assert.True(t, ts.Equal(out.Timestamp))
	assert.Empty(t, out.FromLocation, "sin origen = recepción externa")
	assert.Equal(t, "A", out.ToLocation)
	assert.Equal(t, int64(10), out.Qty)
}

func TestRecord_GeneraUUIDSiFaltaID(t *testing.T) {
	uc := newMovementFixture(t)

	out, err := uc.Record(context.Background(), dto.RecordMovementRequest{
		ToLocation: "A",
		ProductID:  "P1",
		Qty:        5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.MovementID, "un ID omitido debe recibir un UUID")

	stored, err := uc.GetByID(out.MovementID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestRecord_TimestampPorDefecto(t *testing.T) {
	uc := newMovementFixture(t)

	before := time.Now()
	out, err := uc.Record(context.Background(), dto.RecordMovementRequest{
		MovementID: "M1",
		ToLocation: "A",
		ProductID:  "P1",
		Qty:        1,
	})
	require.NoError(t, err)

	assert.False(t, out.Timestamp.Before(before), "sin timestamp se usa la hora actual")
	assert.False(t, out.Timestamp.After(time.Now()))
}

func TestRecord_IDDuplicadoNoAlteraElLibro(t *testing.T) {
	uc := newMovementFixture(t)
	ctx := context.Background()

	_, err := uc.Record(ctx, dto.RecordMovementRequest{
		MovementID: "M1", ToLocation: "A", ProductID: "P1", Qty: 10,
	})
	require.NoError(t, err)

	_, err = uc.Record(ctx, dto.RecordMovementRequest{
		MovementID: "M1", ToLocation: "B", ProductID: "P1", Qty: 99,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El movimiento original queda intacto y el libro no crece
	stored, err := uc.GetByID("M1")
	require.NoError(t, err)
	assert.Equal(t, "A", stored.ToLocation)
	assert.Equal(t, int64(10), stored.Qty)

	list, err := uc.List(0, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestRecord_ReferenciasColgantes(t *testing.T) {
	uc := newMovementFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.RecordMovementRequest
	}{
		{"producto inexistente", dto.RecordMovementRequest{ToLocation: "A", ProductID: "NOPE", Qty: 1}},
		{"origen inexistente", dto.RecordMovementRequest{FromLocation: "NOPE", ToLocation: "A", ProductID: "P1", Qty: 1}},
		{"destino inexistente", dto.RecordMovementRequest{FromLocation: "A", ToLocation: "NOPE", ProductID: "P1", Qty: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Record(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrDanglingReference)
		})
	}
}

func TestRecord_ProductoRequerido(t *testing.T) {
	uc := newMovementFixture(t)

	_, err := uc.Record(context.Background(), dto.RecordMovementRequest{ToLocation: "A", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_AmbasFronterasExternasPermitido(t *testing.T) {
	uc := newMovementFixture(t)

	out, err := uc.Record(context.Background(), dto.RecordMovementRequest{
		MovementID: "M1", ProductID: "P1", Qty: 7,
	})
	require.NoError(t, err)
	assert.Empty(t, out.FromLocation)
	assert.Empty(t, out.ToLocation)
}

func TestRecord_QtyNegativaYCeroAceptadas(t *testing.T) {
	uc := newMovementFixture(t)
	ctx := context.Background()

	_, err := uc.Record(ctx, dto.RecordMovementRequest{MovementID: "M1", ToLocation: "A", ProductID: "P1", Qty: -5})
	assert.NoError(t, err, "qty negativa se acepta sin validación de signo")

	_, err = uc.Record(ctx, dto.RecordMovementRequest{MovementID: "M2", ToLocation: "A", ProductID: "P1", Qty: 0})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CamposNulosSeConservan(t *testing.T) {
	uc := newMovementFixture(t)
	ctx := context.Background()

	_, err := uc.Record(ctx, dto.RecordMovementRequest{
		MovementID: "M1", FromLocation: "A", ToLocation: "B", ProductID: "P1", Qty: 4, Notes: "traslado",
	})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "M1", dto.UpdateMovementRequest{Qty: int64Ptr(6)})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(6), out.Qty)
	assert.Equal(t, "A", out.FromLocation, "los campos no enviados no cambian")
	assert.Equal(t, "B", out.ToLocation)
	assert.Equal(t, "traslado", out.Notes)
}

func TestUpdate_MovimientoInexistente(t *testing.T) {
	uc := newMovementFixture(t)

	out, err := uc.Update(context.Background(), "NOPE", dto.UpdateMovementRequest{Qty: int64Ptr(1)})
	require.NoError(t, err)
	assert.Nil(t, out, "actualizar un ID inexistente devuelve (nil, nil)")
}

func TestUpdate_ReferenciaColganteRechazada(t *testing.T) {
	uc := newMovementFixture(t)
	ctx := context.Background()

	_, err := uc.Record(ctx, dto.RecordMovementRequest{
		MovementID: "M1", ToLocation: "A", ProductID: "P1", Qty: 4,
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, "M1", dto.UpdateMovementRequest{ToLocation: strPtr("NOPE")})
	assert.ErrorIs(t, err, domain.ErrDanglingReference)

	// El movimiento conserva su destino original
	stored, err := uc.GetByID("M1")
	require.NoError(t, err)
	assert.Equal(t, "A", stored.ToLocation)
}

func TestUpdate_VaciarFronteraConvierteEnExterno(t *testing.T) {
	uc := newMovementFixture(t)
	ctx := context.Background()

	_, err := uc.Record(ctx, dto.RecordMovementRequest{
		MovementID: "M1", FromLocation: "A", ToLocation: "B", ProductID: "P1", Qty: 4,
	})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "M1", dto.UpdateMovementRequest{ToLocation: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, out.ToLocation, "destino vaciado = salida hacia la frontera externa")
	assert.Equal(t, "A", out.FromLocation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListByProduct_MasRecientePrimero(t *testing.T) {
	uc := newMovementFixture(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"M1", "M2", "M3"} {
		ts := base.Add(time.Duration(i) * time.Hour)
		_, err := uc.Record(ctx, dto.RecordMovementRequest{
			MovementID: id, Timestamp: &ts, ToLocation: "A", ProductID: "P1", Qty: 1,
		})
		require.NoError(t, err)
	}

	out, err := uc.ListByProduct("P1", 0, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "M3", out.Items[0].MovementID)
	assert.Equal(t, "M2", out.Items[1].MovementID)
	assert.Equal(t, "M1", out.Items[2].MovementID)
}

func TestListForLocation_SeparaEntradasYSalidas(t *testing.T) {
	uc := newMovementFixture(t)
	ctx := context.Background()

	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	// M1: externo → A (entrada), M2: A → B (salida de A), M3: B → externo (no toca A)
	_, err := uc.Record(ctx, dto.RecordMovementRequest{MovementID: "M1", Timestamp: &t1, ToLocation: "A", ProductID: "P1", Qty: 10})
	require.NoError(t, err)
	_, err = uc.Record(ctx, dto.RecordMovementRequest{MovementID: "M2", Timestamp: &t2, FromLocation: "A", ToLocation: "B", ProductID: "P1", Qty: 4})
	require.NoError(t, err)
	_, err = uc.Record(ctx, dto.RecordMovementRequest{MovementID: "M3", Timestamp: &t3, FromLocation: "B", ProductID: "P1", Qty: 6})
	require.NoError(t, err)

	out, err := uc.ListForLocation("A", 0, 0)
	require.NoError(t, err)

	require.Len(t, out.Incoming, 1)
	assert.Equal(t, "M1", out.Incoming[0].MovementID)
	require.Len(t, out.Outgoing, 1)
	assert.Equal(t, "M2", out.Outgoing[0].MovementID)

	// B recibe M2 y despacha M3
	outB, err := uc.ListForLocation("B", 0, 0)
	require.NoError(t, err)
	require.Len(t, outB.Incoming, 1)
	assert.Equal(t, "M2", outB.Incoming[0].MovementID)
	require.Len(t, outB.Outgoing, 1)
	assert.Equal(t, "M3", outB.Outgoing[0].MovementID)
}

func TestList_Paginacion(t *testing.T) {
	uc := newMovementFixture(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		_, err := uc.Record(ctx, dto.RecordMovementRequest{
			Timestamp: &ts, ToLocation: "A", ProductID: "P1", Qty: 1,
		})
		require.NoError(t, err)
	}

	page1, err := uc.List(2, 0)
	require.NoError(t, err)
	assert.Len(t, page1.Items, 2)
	assert.Equal(t, 2, page1.Page.Limit)

	page3, err := uc.List(2, 4)
	require.NoError(t, err)
	assert.Len(t, page3.Items, 1, "la última página queda incompleta")
}
