package repository

import "github.com/tu-usuario/billing-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// GetByID retorna (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
