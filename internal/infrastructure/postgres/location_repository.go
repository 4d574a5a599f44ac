package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (location_id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID. Devuelve (nil, nil) si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `
		SELECT location_id, name, address, created_at, updated_at
		FROM locations WHERE location_id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.Address, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// Update actualiza nombre y dirección. El ID es inmutable.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, address = $3, updated_at = $4
		WHERE location_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// List lista ubicaciones en orden de clave primaria con paginación.
func (r *LocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT location_id, name, address, created_at, updated_at
		FROM locations ORDER BY location_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
