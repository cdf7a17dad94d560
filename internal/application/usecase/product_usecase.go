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

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	validate *validate.Validator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, v *validate.Validator) *ProductUseCase {
	return &ProductUseCase{repo: repo, validate: v}
}

// Create valida y persiste un nuevo producto.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound(domain.EntityProduct, id)
	}
	return toProductResponse(product), nil
}

// GetAll lista productos. Sin productos retorna lista vacía, nunca error.
func (uc *ProductUseCase) GetAll(limit, offset int) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update valida y aplica la descripción del request sobre el producto.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound(domain.EntityProduct, id)
	}
	product.Description = in.Description
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Verifica existencia primero.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NewNotFound(domain.EntityProduct, id)
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Description: p.Description,
	}
}
