package entity

import "time"

// Product representa un producto rastreado por el almacén.
// El ID lo asigna el cliente al crear y es inmutable; Name y Description son editables.
type Product struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
