package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Billing representa una factura (cabecera) junto con sus líneas.
// La cabecera y las líneas forman un único agregado: se persisten y se
// eliminan como una sola unidad de consistencia.
type Billing struct {
	ID            string
	CustomerID    string
	InvoiceNumber string
	Date          time.Time
	DueDate       time.Time
	TotalAmount   decimal.Decimal
	Currency      string
	Lines         []*BillingLine
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BillingLine representa una línea de factura. Referencia exactamente un
// producto; Description puede venir copiada del producto.
type BillingLine struct {
	ID          string
	BillingID   string
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
