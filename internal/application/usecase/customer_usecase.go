package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/billing-api/internal/application/dto"
	"github.com/tu-usuario/billing-api/internal/application/validate"
	"github.com/tu-usuario/billing-api/internal/domain"
	"github.com/tu-usuario/billing-api/internal/domain/entity"
	"github.com/tu-usuario/billing-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	validate *validate.Validator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, v *validate.Validator) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, validate: v}
}

// Create valida y persiste un nuevo cliente.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound(domain.EntityCustomer, id)
	}
	return toCustomerResponse(customer), nil
}

// GetAll lista clientes. Sin clientes retorna lista vacía, nunca error.
func (uc *CustomerUseCase) GetAll(limit, offset int) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update valida y aplica todos los campos del request sobre el cliente.
func (uc *CustomerUseCase) Update(id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound(domain.EntityCustomer, id)
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente por ID. Verifica existencia primero.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.NewNotFound(domain.EntityCustomer, id)
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Address: c.Address,
	}
}
