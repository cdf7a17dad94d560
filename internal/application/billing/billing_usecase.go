package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/billing-api/internal/application/dto"
	"github.com/tu-usuario/billing-api/internal/application/validate"
	"github.com/tu-usuario/billing-api/internal/domain"
	"github.com/tu-usuario/billing-api/internal/domain/entity"
	"github.com/tu-usuario/billing-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// BillingUseCase orquesta el agregado Billing: creación, consulta,
// actualización y eliminación, más la importación desde el feed externo.
// Es el único dueño de la regla de integridad referencial: cliente y
// productos deben existir antes de persistir una factura que los refiere.
type BillingUseCase struct {
	billingRepo  repository.BillingRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	source       ExternalBillingSource
	validate     *validate.Validator
}

// NewBillingUseCase construye el caso de uso.
func NewBillingUseCase(
	billingRepo repository.BillingRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	source ExternalBillingSource,
	v *validate.Validator,
) *BillingUseCase {
	return &BillingUseCase{
		billingRepo:  billingRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		source:       source,
		validate:     v,
	}
}

// Create valida el request, verifica cliente y productos referenciados y
// persiste cabecera + líneas en una sola llamada al repositorio.
// Orden de chequeo: campos → cliente → productos en orden del request,
// con corte en el primer producto faltante. Ningún chequeo fallido toca
// el storage.
func (uc *BillingUseCase) Create(ctx context.Context, in dto.BillingRequest) (*dto.BillingResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	products, err := uc.resolveReferences(in.CustomerID, lineProductIDs(in.Lines))
	if err != nil {
		return nil, err
	}

	billing, err := buildAggregate(uuid.New().String(), in, products)
	if err != nil {
		return nil, err
	}
	if err := uc.billingRepo.Create(billing); err != nil {
		return nil, err
	}
	return toBillingResponse(billing), nil
}

// GetByID obtiene una factura con sus líneas.
func (uc *BillingUseCase) GetByID(ctx context.Context, id string) (*dto.BillingResponse, error) {
	billing, err := uc.billingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, domain.NewNotFound(domain.EntityBilling, id)
	}
	return toBillingResponse(billing), nil
}

// GetAll lista facturas en el orden natural del repositorio. Sin facturas
// retorna lista vacía, nunca error.
func (uc *BillingUseCase) GetAll(ctx context.Context, limit, offset int) ([]*dto.BillingResponse, error) {
	list, err := uc.billingRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBillingResponse(b))
	}
	return out, nil
}

// Update aplica los campos escalares del request sobre la factura y
// reemplaza el conjunto de líneas de forma atómica. No re-valida las
// referencias a cliente/producto (comportamiento heredado del diseño
// original).
func (uc *BillingUseCase) Update(ctx context.Context, id string, in dto.BillingRequest) (*dto.BillingResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	billing, err := uc.billingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, domain.NewNotFound(domain.EntityBilling, id)
	}

	date, dueDate, err := parseDates(in.Date, in.DueDate)
	if err != nil {
		return nil, err
	}
	billing.InvoiceNumber = in.InvoiceNumber
	billing.Date = date
	billing.DueDate = dueDate
	billing.TotalAmount = in.TotalAmount
	billing.Currency = in.Currency
	billing.UpdatedAt = time.Now()

	lines := make([]*entity.BillingLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, &entity.BillingLine{
			ID:          uuid.New().String(),
			BillingID:   billing.ID,
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	billing.Lines = lines

	if err := uc.billingRepo.Update(billing); err != nil {
		return nil, err
	}
	return toBillingResponse(billing), nil
}

// Delete elimina una factura por ID. Las líneas caen por cascada a nivel
// de storage (FK ON DELETE CASCADE).
func (uc *BillingUseCase) Delete(ctx context.Context, id string) error {
	billing, err := uc.billingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if billing == nil {
		return domain.NewNotFound(domain.EntityBilling, id)
	}
	return uc.billingRepo.Delete(id)
}

// resolveReferences verifica que el cliente exista y que cada producto
// exista, en el orden recibido y con corte en el primer faltante.
// Retorna los productos indexados por ID para copiar descripciones.
func (uc *BillingUseCase) resolveReferences(customerID string, productIDs []string) (map[string]*entity.Product, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound(domain.EntityCustomer, customerID)
	}
	products := make(map[string]*entity.Product, len(productIDs))
	for _, pid := range productIDs {
		if _, ok := products[pid]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(pid)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.NewNotFound(domain.EntityProduct, pid)
		}
		products[pid] = product
	}
	return products, nil
}

func lineProductIDs(lines []dto.BillingLineRequest) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}

// buildAggregate arma la entidad Billing con líneas a partir del request.
// La descripción de cada línea toma la del producto cuando viene vacía.
func buildAggregate(id string, in dto.BillingRequest, products map[string]*entity.Product) (*entity.Billing, error) {
	date, dueDate, err := parseDates(in.Date, in.DueDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	billing := &entity.Billing{
		ID:            id,
		CustomerID:    in.CustomerID,
		InvoiceNumber: in.InvoiceNumber,
		Date:          date,
		DueDate:       dueDate,
		TotalAmount:   in.TotalAmount,
		Currency:      in.Currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, l := range in.Lines {
		description := l.Description
		if description == "" {
			if p := products[l.ProductID]; p != nil {
				description = p.Description
			}
		}
		billing.Lines = append(billing.Lines, &entity.BillingLine{
			ID:          uuid.New().String(),
			BillingID:   billing.ID,
			ProductID:   l.ProductID,
			Description: description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return billing, nil
}

func parseDates(date, dueDate string) (time.Time, time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, time.Time{}, &domain.ValidationError{
			Messages: []string{"date must be a date in format YYYY-MM-DD."},
		}
	}
	dd, err := time.Parse(dateLayout, dueDate)
	if err != nil {
		return time.Time{}, time.Time{}, &domain.ValidationError{
			Messages: []string{"due_date must be a date in format YYYY-MM-DD."},
		}
	}
	return d, dd, nil
}

func toBillingResponse(b *entity.Billing) *dto.BillingResponse {
	resp := &dto.BillingResponse{
		ID:            b.ID,
		InvoiceNumber: b.InvoiceNumber,
		CustomerID:    b.CustomerID,
		Date:          b.Date.Format(dateLayout),
		DueDate:       b.DueDate.Format(dateLayout),
		TotalAmount:   b.TotalAmount,
		Currency:      b.Currency,
		Lines:         make([]dto.BillingLineResponse, 0, len(b.Lines)),
	}
	for _, l := range b.Lines {
		resp.Lines = append(resp.Lines, dto.BillingLineResponse{
			ID:          l.ID,
			BillingID:   l.BillingID,
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return resp
}
