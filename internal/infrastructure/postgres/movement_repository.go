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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
//
// FromLocation/ToLocation vacíos (frontera externa) se persisten como NULL
// para que las foreign keys apliquen solo cuando hay referencia real.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `movement_id, timestamp, from_location, to_location, product_id, qty, notes, created_at`

// Create persiste un movimiento nuevo en el libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (movement_id, timestamp, from_location, to_location, product_id, qty, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Timestamp,
		nullable(movement.FromLocation), nullable(movement.ToLocation),
		movement.ProductID, movement.Qty, movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrDanglingReference
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Update corrige un movimiento existente (todos los campos salvo el ID).
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE movements
		SET timestamp = $2, from_location = $3, to_location = $4, product_id = $5, qty = $6, notes = $7
		WHERE movement_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Timestamp,
		nullable(movement.FromLocation), nullable(movement.ToLocation),
		movement.ProductID, movement.Qty, movement.Notes,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrDanglingReference
		}
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// All devuelve el libro completo sin paginar (entrada del cálculo de balances).
func (r *MovementRepo) All() ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("all movements: %w", err)
	}
	return scanMovements(rows)
}

// List lista el libro completo, más reciente primero, con paginación.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

// ListByProduct lista movimientos de un producto, más reciente primero.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE product_id = $1 ORDER BY timestamp DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	return scanMovements(rows)
}

// ListIncoming lista movimientos con destino en la ubicación, más reciente primero.
func (r *MovementRepo) ListIncoming(locationID string, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE to_location = $1 ORDER BY timestamp DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list incoming: %w", err)
	}
	return scanMovements(rows)
}

// ListOutgoing lista movimientos con origen en la ubicación, más reciente primero.
func (r *MovementRepo) ListOutgoing(locationID string, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE from_location = $1 ORDER BY timestamp DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list outgoing: %w", err)
	}
	return scanMovements(rows)
}

// nullable convierte "" en NULL para las columnas de referencia opcional.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var from, to *string
	if err := row.Scan(&m.ID, &m.Timestamp, &from, &to, &m.ProductID, &m.Qty, &m.Notes, &m.CreatedAt); err != nil {
		return nil, err
	}
	if from != nil {
		m.FromLocation = *from
	}
	if to != nil {
		m.ToLocation = *to
	}
	return &m, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
