package repository

import "github.com/tu-usuario/billing-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID retorna (nil, nil) cuando el cliente no existe.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
