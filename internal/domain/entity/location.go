package entity

import "time"

// Location representa una bodega o punto de venta donde se almacena producto.
type Location struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
