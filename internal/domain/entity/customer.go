package entity

import "time"

// Customer representa un cliente facturable (nombre, email y dirección postal).
type Customer struct {
	ID        string
	Name      string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
