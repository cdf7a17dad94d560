package repository

import "github.com/tu-usuario/billing-api/internal/domain/entity"

// BillingRepository define el puerto de persistencia para el agregado
// Billing (cabecera + líneas).
//
// Create y Update operan sobre el agregado completo dentro de una misma
// transacción: o se persiste todo o no se persiste nada. Update reemplaza
// el conjunto de líneas de forma atómica. Delete elimina la cabecera; las
// líneas caen por cascada a nivel de storage (FK ON DELETE CASCADE).
// GetByID retorna (nil, nil) cuando la factura no existe.
type BillingRepository interface {
	Create(billing *entity.Billing) error
	GetByID(id string) (*entity.Billing, error)
	List(limit, offset int) ([]*entity.Billing, error)
	Update(billing *entity.Billing) error
	Delete(id string) error
}
