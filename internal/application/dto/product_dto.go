package dto

import "time"

// CreateProductRequest entrada para crear un producto. El ID lo asigna el
// cliente y es inmutable después de la creación.
type CreateProductRequest struct {
	ProductID   string `json:"product_id" validate:"required,min=1,max=50"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto (ID inmutable).
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID   string    `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
