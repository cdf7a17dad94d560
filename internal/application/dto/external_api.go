package dto

import "github.com/shopspring/decimal"

// Shapes del feed externo de facturación. El contrato no es nuestro:
// mezcla snake_case (due_date, unit_price) con camelCase (productId) y
// debe preservarse tal cual.

// BillingAPIRecord un registro del feed (arreglo JSON en la raíz).
type BillingAPIRecord struct {
	InvoiceNumber string            `json:"invoice_number"`
	Customer      CustomerAPIRecord `json:"customer"`
	Date          string            `json:"date"`
	DueDate       string            `json:"due_date"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	Currency      string            `json:"currency"`
	Lines         []LineAPIRecord   `json:"lines"`
}

// CustomerAPIRecord cliente anidado en el registro externo. Solo se usa
// el ID como foreign key; el resto del detalle se descarta al mapear.
type CustomerAPIRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// LineAPIRecord línea anidada en el registro externo.
type LineAPIRecord struct {
	ProductID   string          `json:"productId"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
