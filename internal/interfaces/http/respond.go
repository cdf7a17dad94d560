package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/billing-api/internal/application/dto"
	"github.com/tu-usuario/billing-api/internal/domain"
)

// traceID retorna el identificador de correlación del request (middleware
// requestid) o genera uno si no hay ninguno activo.
func traceID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}

// respondData envuelve data en el envelope uniforme {trace_id, data, errors}.
func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.GenericResponse{
		TraceID: traceID(c),
		Data:    data,
		Errors:  []string{},
	})
}

// respondError es el único punto de normalización de errores de negocio
// a HTTP: ValidationError → 400, NotFoundError → 404, ImportError → 500,
// cualquier otro → 500 con mensaje genérico y detalle completo en el log.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		log.Warn().Strs("violations", vErr.Messages).Msg("request inválido")
		return respondErrors(c, fiber.StatusBadRequest, vErr.Messages)
	}
	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		return respondErrors(c, fiber.StatusNotFound, []string{nfErr.Error()})
	}
	var impErr *domain.ImportError
	if errors.As(err, &impErr) {
		log.Error().Err(impErr).Str("cause", impErr.Cause).Msg("import desde API externa falló")
		return respondErrors(c, fiber.StatusInternalServerError, []string{impErr.Error()})
	}
	log.Error().Err(err).Msg("error inesperado")
	return respondErrors(c, fiber.StatusInternalServerError, []string{"An unexpected error occurred."})
}

func respondErrors(c *fiber.Ctx, status int, msgs []string) error {
	return c.Status(status).JSON(dto.GenericResponse{
		TraceID: traceID(c),
		Data:    nil,
		Errors:  msgs,
	})
}

// errInvalidBody error de parseo del cuerpo del request, normalizado como
// violación de validación.
func errInvalidBody() error {
	return &domain.ValidationError{Messages: []string{"Request body is invalid."}}
}
