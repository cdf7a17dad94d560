package entity

import "time"

// Product representa un producto facturable. Solo lleva descripción;
// el precio viaja en cada línea de factura.
type Product struct {
	ID          string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
