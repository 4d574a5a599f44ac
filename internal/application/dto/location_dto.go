package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación. El ID lo asigna el
// cliente y es inmutable después de la creación.
type CreateLocationRequest struct {
	LocationID string `json:"location_id" validate:"required,min=1,max=50"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Address    string `json:"address"`
}

// UpdateLocationRequest entrada para actualizar una ubicación (ID inmutable).
type UpdateLocationRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	LocationID string    `json:"location_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LocationListResponse lista paginada de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
