package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
}
