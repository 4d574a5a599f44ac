package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función con un repositorio de movimientos atado a una
// transacción de BD. Run garantiza atomicidad de las escrituras al libro
// (todo o nada por llamada); RunRead abre una transacción de solo lectura
// para que el barrido completo del libro vea un estado consistente aunque
// haya escritores concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error
	RunRead(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error
}

// BalancePDFGenerator genera la representación PDF del reporte de balances.
// Implementado en infrastructure/pdf.
type BalancePDFGenerator interface {
	GenerateBalancePDF(ctx context.Context, rows []dto.BalanceRow, generatedAt time.Time) ([]byte, error)
}
