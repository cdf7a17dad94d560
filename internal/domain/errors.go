package domain

import (
	"fmt"
	"strings"
)

// Tipos de entidad usados en errores NotFound.
const (
	EntityCustomer = "Customer"
	EntityProduct  = "Product"
	EntityBilling  = "Billing"
)

// NotFoundError indica que una búsqueda por ID no encontró la entidad.
type NotFoundError struct {
	Entity string // Customer, Product, Billing
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found.", e.Entity, e.ID)
}

// NewNotFound construye un NotFoundError.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError agrupa las violaciones de campo de un request.
// Nunca llega a la capa de persistencia.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Causas de fallo del import desde la API externa.
const (
	ImportCauseNetwork     = "network"
	ImportCauseDeserialize = "deserialize"
	ImportCauseEmpty       = "empty"
	ImportCauseUnexpected  = "unexpected"
)

// ImportError indica un fallo en el flujo de importación de facturas externas.
// Cause es una de las constantes ImportCause*.
type ImportError struct {
	Cause string
	Err   error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import from external api failed (%s): %v", e.Cause, e.Err)
	}
	return fmt.Sprintf("import from external api failed (%s)", e.Cause)
}

func (e *ImportError) Unwrap() error { return e.Err }
