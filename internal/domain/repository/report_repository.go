package repository

import "context"

// EntityCounts son los contadores crudos del tablero.
type EntityCounts struct {
	Products  int64
	Locations int64
	Movements int64
}

// ReportRepository define las consultas de solo lectura para el tablero.
// Las implementaciones no modifican datos.
type ReportRepository interface {
	// GetEntityCounts devuelve el total de productos, ubicaciones y movimientos.
	GetEntityCounts(ctx context.Context) (*EntityCounts, error)

	// GetActiveLocations devuelve distinct(to_location) + distinct(from_location)
	// sobre todos los movimientos, sumando ambos lados por separado. Una
	// ubicación que aparece como origen y destino cuenta dos veces; es un
	// proxy de actividad, no un conteo de ubicaciones únicas.
	GetActiveLocations(ctx context.Context) (int64, error)
}
