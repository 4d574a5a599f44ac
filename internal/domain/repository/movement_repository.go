package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. GetByID devuelve (nil, nil) si el movimiento no existe.
//
// All devuelve el libro completo sin paginar: es la entrada del cálculo de
// balances, que recorre todos los movimientos en cada invocación.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	All() ([]*entity.Movement, error)
	List(limit, offset int) ([]*entity.Movement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
	// ListIncoming lista movimientos con ToLocation == locationID, más reciente primero.
	ListIncoming(locationID string, limit, offset int) ([]*entity.Movement, error)
	// ListOutgoing lista movimientos con FromLocation == locationID, más reciente primero.
	ListOutgoing(locationID string, limit, offset int) ([]*entity.Movement, error)
}
