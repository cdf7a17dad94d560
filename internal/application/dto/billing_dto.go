package dto

import "github.com/shopspring/decimal"

// BillingRequest body para POST/PUT /api/billing. Las fechas viajan como
// "YYYY-MM-DD".
type BillingRequest struct {
	InvoiceNumber string               `json:"invoice_number" validate:"required,max=50"`
	CustomerID    string               `json:"customer_id" validate:"required,uuid"`
	Date          string               `json:"date" validate:"required,datetime=2006-01-02"`
	DueDate       string               `json:"due_date" validate:"required,datetime=2006-01-02"`
	TotalAmount   decimal.Decimal      `json:"total_amount" validate:"gte=0"`
	Currency      string               `json:"currency" validate:"required,len=3"`
	Lines         []BillingLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// BillingLineRequest línea de factura dentro de un BillingRequest.
// Description es opcional: si viene vacía se copia la del producto.
type BillingLineRequest struct {
	ProductID   string          `json:"product_id" validate:"required,uuid"`
	Description string          `json:"description" validate:"max=255"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gt=0"`
	Subtotal    decimal.Decimal `json:"subtotal" validate:"gte=0"`
}

// BillingResponse factura con sus líneas.
type BillingResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	CustomerID    string                `json:"customer_id"`
	Date          string                `json:"date"`
	DueDate       string                `json:"due_date"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	Currency      string                `json:"currency"`
	Lines         []BillingLineResponse `json:"lines"`
}

// BillingLineResponse línea de factura en respuestas.
type BillingLineResponse struct {
	ID          string          `json:"id"`
	BillingID   string          `json:"billing_id"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
