package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-api/internal/application/dto"
	"github.com/tu-usuario/billing-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.GenericResponse{data=dto.CustomerResponse}
// @Failure      400   {object}  dto.GenericResponse
// @Router       /api/customer [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody())
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.GenericResponse{data=dto.CustomerResponse}
// @Failure      404  {object}  dto.GenericResponse
// @Router       /api/customer/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// GetAll godoc
// @Summary      Listar clientes
// @Tags         customer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.GenericResponse{data=[]dto.CustomerResponse}
// @Router       /api/customer [get]
func (h *CustomerHandler) GetAll(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.GetAll(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del cliente"
// @Param        body  body  dto.CustomerRequest  true  "Datos a aplicar"
// @Success      200   {object}  dto.GenericResponse{data=dto.CustomerResponse}
// @Failure      400   {object}  dto.GenericResponse
// @Failure      404   {object}  dto.GenericResponse
// @Router       /api/customer/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody())
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.GenericResponse
// @Router       /api/customer/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
