package billing

import (
	"context"

	"github.com/tu-usuario/billing-api/internal/application/dto"
)

// ExternalBillingSource puerto hacia el feed externo de facturación.
// FetchBillings retorna los registros publicados por el tercero; los
// fallos de transporte y de deserialización llegan como
// *domain.ImportError con la causa correspondiente.
type ExternalBillingSource interface {
	FetchBillings(ctx context.Context) ([]dto.BillingAPIRecord, error)
}
