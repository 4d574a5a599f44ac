package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardUseCase genera los contadores del tablero.
//
// Fuente de datos: ReportRepository (consultas read-only).
// No recorre el libro de movimientos; delega todo en el repositorio.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary construye el DashboardResponse.
//
// Dos llamadas en paralelo:
//  1. GetEntityCounts    → Products + Locations + Movements
//  2. GetActiveLocations → ActiveLocations (distinct(to) + distinct(from),
//     sin deduplicar entre ambos lados)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	type countsResult struct {
		counts *repository.EntityCounts
		err    error
	}
	type activeResult struct {
		active int64
		err    error
	}

	countsCh := make(chan countsResult, 1)
	activeCh := make(chan activeResult, 1)

	go func() {
		counts, err := uc.reportRepo.GetEntityCounts(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		active, err := uc.reportRepo.GetActiveLocations(ctx)
		activeCh <- activeResult{active, err}
	}()

	counts := <-countsCh
	active := <-activeCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: contadores de entidades: %w", counts.err)
	}
	if active.err != nil {
		return nil, fmt.Errorf("dashboard: ubicaciones activas: %w", active.err)
	}

	return &dto.DashboardResponse{
		Products:        counts.counts.Products,
		Locations:       counts.counts.Locations,
		Movements:       counts.counts.Movements,
		ActiveLocations: active.active,
	}, nil
}
