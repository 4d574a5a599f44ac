package entity

import "time"

// Movement representa un traslado direccional de cantidad de un producto.
//
// FromLocation y ToLocation vacíos representan la frontera externa:
// sin FromLocation es una recepción (entrada desde fuera de la red),
// sin ToLocation es una salida (venta o despacho hacia fuera).
// Ambos vacíos está permitido y no afecta ningún balance.
type Movement struct {
	ID           string
	Timestamp    time.Time
	FromLocation string // vacío = origen externo
	ToLocation   string // vacío = destino externo
	ProductID    string
	Qty          int64 // el signo no se valida; se propaga aritméticamente al balance
	Notes        string
	CreatedAt    time.Time
}
