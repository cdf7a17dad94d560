package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-api/internal/domain"
)

// Validator valida structs de request y produce la lista de violaciones
// por campo. Un resultado vacío significa request válido.
type Validator struct {
	v *validator.Validate
}

// New construye el validador. Registra decimal.Decimal como tipo numérico
// para que los tags gt/gte apliquen sobre montos, y usa el nombre del tag
// json en los mensajes.
func New() *Validator {
	v := validator.New()

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Struct valida el struct y retorna un *domain.ValidationError con los
// mensajes de cada campo violado, o nil si todo es válido.
func (va *Validator) Struct(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: el caller pasó algo que no es struct
		return &domain.ValidationError{Messages: []string{err.Error()}}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return &domain.ValidationError{Messages: msgs}
}

// message traduce una violación a un mensaje legible por el consumidor
// de la API, referenciando el campo por su nombre json.
func message(fe validator.FieldError) string {
	name := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", name)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters.", name, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters.", name, fe.Param())
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s).", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s.", name, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID.", name)
	case "datetime":
		return fmt.Sprintf("%s must be a date in format YYYY-MM-DD.", name)
	default:
		return fmt.Sprintf("%s is invalid.", name)
	}
}

// fieldName retorna el namespace del campo sin el nombre del struct raíz,
// p. ej. "lines[0].quantity".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
