package dto

import "time"

// RecordMovementRequest entrada para registrar un movimiento en el libro.
//
// FromLocation y ToLocation vacíos representan la frontera externa (recepción
// o venta). MovementID vacío recibe un UUID; Timestamp nulo recibe la hora
// actual. Qty no se valida por signo: negativo o cero se aceptan y se
// propagan aritméticamente al balance.
type RecordMovementRequest struct {
	MovementID   string     `json:"movement_id" validate:"omitempty,max=50"`
	Timestamp    *time.Time `json:"timestamp"`
	FromLocation string     `json:"from_location"`
	ToLocation   string     `json:"to_location"`
	ProductID    string     `json:"product_id" validate:"required"`
	Qty          int64      `json:"qty"`
	Notes        string     `json:"notes"`
}

// UpdateMovementRequest entrada para corregir un movimiento existente.
// Los campos nulos se conservan; FromLocation/ToLocation aceptan la cadena
// vacía para mover la referencia a la frontera externa.
type UpdateMovementRequest struct {
	Timestamp    *time.Time `json:"timestamp"`
	FromLocation *string    `json:"from_location"`
	ToLocation   *string    `json:"to_location"`
	ProductID    *string    `json:"product_id"`
	Qty          *int64     `json:"qty"`
	Notes        *string    `json:"notes"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	MovementID   string    `json:"movement_id"`
	Timestamp    time.Time `json:"timestamp"`
	FromLocation string    `json:"from_location,omitempty"`
	ToLocation   string    `json:"to_location,omitempty"`
	ProductID    string    `json:"product_id"`
	Qty          int64     `json:"qty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LocationMovementsResponse historial de una ubicación: entradas (ToLocation
// es la ubicación) y salidas (FromLocation es la ubicación), cada lista
// ordenada del más reciente al más antiguo.
type LocationMovementsResponse struct {
	Incoming []MovementResponse `json:"incoming"`
	Outgoing []MovementResponse `json:"outgoing"`
	Page     PageResponse       `json:"page"`
}
