package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/billing-api/internal/application/dto"
	"github.com/tu-usuario/billing-api/internal/domain"
	"github.com/tu-usuario/billing-api/internal/domain/entity"
)

// ImportFromExternalAPI trae los registros del feed externo e importa
// SOLO el primero (comportamiento documentado del upstream, no un bug).
// Política de errores:
//   - fallo de transporte        → ImportError(network)
//   - payload no parseable       → ImportError(deserialize), incluidas
//     fechas inválidas dentro del registro
//   - lista vacía o ausente      → ImportError(empty)
//   - cliente inexistente        → NotFoundError(Customer) sin envolver
//   - primer producto faltante   → NotFoundError(Product) sin envolver,
//     con corte en las líneas restantes
//   - cualquier otro fallo       → ImportError(unexpected) envolviendo la causa
//
// No hay guard de idempotencia: re-importar duplica la factura.
func (uc *BillingUseCase) ImportFromExternalAPI(ctx context.Context) error {
	records, err := uc.source.FetchBillings(ctx)
	if err != nil {
		var impErr *domain.ImportError
		if errors.As(err, &impErr) {
			return err
		}
		return &domain.ImportError{Cause: domain.ImportCauseUnexpected, Err: err}
	}
	if len(records) == 0 {
		return &domain.ImportError{Cause: domain.ImportCauseEmpty}
	}
	record := records[0]

	// La descripción viaja en cada línea del feed; del resolve solo
	// interesa la verificación de existencia.
	if _, err := uc.resolveReferences(record.Customer.ID, recordProductIDs(record.Lines)); err != nil {
		var nfErr *domain.NotFoundError
		if errors.As(err, &nfErr) {
			return err
		}
		return &domain.ImportError{Cause: domain.ImportCauseUnexpected, Err: err}
	}

	billing, err := mapExternalRecord(record)
	if err != nil {
		return err
	}

	if err := uc.billingRepo.Create(billing); err != nil {
		return &domain.ImportError{Cause: domain.ImportCauseUnexpected, Err: err}
	}
	return nil
}

func recordProductIDs(lines []dto.LineAPIRecord) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}

// mapExternalRecord convierte el shape del feed al agregado interno,
// descartando el detalle anidado de cliente y conservando solo los IDs
// como foreign keys.
func mapExternalRecord(record dto.BillingAPIRecord) (*entity.Billing, error) {
	date, err := time.Parse(dateLayout, record.Date)
	if err != nil {
		return nil, &domain.ImportError{Cause: domain.ImportCauseDeserialize, Err: err}
	}
	dueDate, err := time.Parse(dateLayout, record.DueDate)
	if err != nil {
		return nil, &domain.ImportError{Cause: domain.ImportCauseDeserialize, Err: err}
	}
	now := time.Now()
	billing := &entity.Billing{
		ID:            uuid.New().String(),
		CustomerID:    record.Customer.ID,
		InvoiceNumber: record.InvoiceNumber,
		Date:          date,
		DueDate:       dueDate,
		TotalAmount:   record.TotalAmount,
		Currency:      record.Currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, l := range record.Lines {
		billing.Lines = append(billing.Lines, &entity.BillingLine{
			ID:          uuid.New().String(),
			BillingID:   billing.ID,
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return billing, nil
}
