package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el tablero.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetEntityCounts devuelve el total de productos, ubicaciones y movimientos.
func (r *ReportRepo) GetEntityCounts(ctx context.Context) (*repository.EntityCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products)  AS products,
	    (SELECT COUNT(*) FROM locations) AS locations,
	    (SELECT COUNT(*) FROM movements) AS movements`

	var counts repository.EntityCounts
	err := r.pool.QueryRow(ctx, query).Scan(&counts.Products, &counts.Locations, &counts.Movements)
	if err != nil {
		return nil, fmt.Errorf("report.GetEntityCounts: %w", err)
	}
	return &counts, nil
}

// GetActiveLocations devuelve distinct(to_location) + distinct(from_location).
//
// Cada lado se cuenta por separado y NULL (frontera externa) cuenta como un
// valor distinto cuando aparece, igual que el conteo distinct del sistema
// original. Una ubicación activa en ambos sentidos cuenta dos veces.
func (r *ReportRepo) GetActiveLocations(ctx context.Context) (int64, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM (SELECT DISTINCT to_location   FROM movements) t) +
	    (SELECT COUNT(*) FROM (SELECT DISTINCT from_location FROM movements) f)`

	var active int64
	if err := r.pool.QueryRow(ctx, query).Scan(&active); err != nil {
		return 0, fmt.Errorf("report.GetActiveLocations: %w", err)
	}
	return active, nil
}
