package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	dledger "github.com/jhoicas/almacen-api/internal/domain/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// BalanceUseCase calcula el snapshot de balances recalculando desde el libro
// completo en cada llamada (sin estado incremental ni caché).
//
// El barrido del libro corre dentro de una transacción de solo lectura para
// que escritores concurrentes no mezclen estado pre y post escritura en un
// mismo snapshot. La resolución de entidades ocurre después del barrido: una
// entidad referenciada que ya no existe (borrada fuera de banda) se omite de
// la vista plana y se registra en el log con nivel warn.
type BalanceUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	log          *logger.Logger
}

// NewBalanceUseCase construye el caso de uso.
func NewBalanceUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	log *logger.Logger,
) *BalanceUseCase {
	return &BalanceUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		log:          log,
	}
}

// Snapshot devuelve el reporte plano de balances: entradas con neto distinto
// de cero, producto y ubicación resueltos a sus registros completos.
func (uc *BalanceUseCase) Snapshot(ctx context.Context) (*dto.BalanceReportResponse, error) {
	balances, err := uc.fold(ctx)
	if err != nil {
		return nil, err
	}
	entries := dledger.Flatten(balances)

	products := make(map[string]*entity.Product)
	locations := make(map[string]*entity.Location)
	rows := make([]dto.BalanceRow, 0, len(entries))
	for _, e := range entries {
		product, err := uc.resolveProduct(products, e.ProductID)
		if err != nil {
			return nil, err
		}
		location, err := uc.resolveLocation(locations, e.LocationID)
		if err != nil {
			return nil, err
		}
		if product == nil || location == nil {
			uc.log.Warn().
				Str("product_id", e.ProductID).
				Str("location_id", e.LocationID).
				Int64("qty", e.Qty).
				Msg("balance con entidad referenciada inexistente, fila omitida")
			continue
		}
		rows = append(rows, dto.BalanceRow{
			Product: dto.ProductResponse{
				ProductID:   product.ID,
				Name:        product.Name,
				Description: product.Description,
				CreatedAt:   product.CreatedAt,
				UpdatedAt:   product.UpdatedAt,
			},
			Location: dto.LocationResponse{
				LocationID: location.ID,
				Name:       location.Name,
				Address:    location.Address,
				CreatedAt:  location.CreatedAt,
				UpdatedAt:  location.UpdatedAt,
			},
			Qty: e.Qty,
		})
	}
	return &dto.BalanceReportResponse{Items: rows}, nil
}

// Raw devuelve la forma cruda product_id → location_id → neto. A diferencia
// de Snapshot conserva las entradas en cero y no resuelve entidades
// (contrato histórico del endpoint de máquina).
func (uc *BalanceUseCase) Raw(ctx context.Context) (dto.RawBalanceResponse, error) {
	balances, err := uc.fold(ctx)
	if err != nil {
		return nil, err
	}
	return dto.RawBalanceResponse(balances), nil
}

// fold lee el libro completo dentro de una transacción de solo lectura y lo
// pliega en el mapa anidado de balances.
func (uc *BalanceUseCase) fold(ctx context.Context) (map[string]map[string]int64, error) {
	var movements []*entity.Movement
	err := uc.txRunner.RunRead(ctx, func(movRepo repository.MovementRepository) error {
		var err error
		movements, err = movRepo.All()
		return err
	})
	if err != nil {
		return nil, err
	}
	return dledger.Balances(movements), nil
}

func (uc *BalanceUseCase) resolveProduct(cache map[string]*entity.Product, id string) (*entity.Product, error) {
	if p, ok := cache[id]; ok {
		return p, nil
	}
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	cache[id] = p
	return p, nil
}

func (uc *BalanceUseCase) resolveLocation(cache map[string]*entity.Location, id string) (*entity.Location, error) {
	if l, ok := cache[id]; ok {
		return l, nil
	}
	l, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	cache[id] = l
	return l, nil
}

// ReportPDFUseCase exporta el reporte de balances como PDF.
type ReportPDFUseCase struct {
	balanceUC *BalanceUseCase
	generator BalancePDFGenerator
}

// NewReportPDFUseCase construye el caso de uso.
func NewReportPDFUseCase(balanceUC *BalanceUseCase, generator BalancePDFGenerator) *ReportPDFUseCase {
	return &ReportPDFUseCase{balanceUC: balanceUC, generator: generator}
}

// Generate calcula el snapshot y lo convierte a PDF.
func (uc *ReportPDFUseCase) Generate(ctx context.Context) ([]byte, error) {
	report, err := uc.balanceUC.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateBalancePDF(ctx, report.Items, time.Now())
}
