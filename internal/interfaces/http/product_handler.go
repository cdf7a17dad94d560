package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-api/internal/application/dto"
	"github.com/tu-usuario/billing-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.GenericResponse{data=dto.ProductResponse}
// @Failure      400   {object}  dto.GenericResponse
// @Router       /api/product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
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
// @Summary      Obtener producto por ID
// @Tags         product
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.GenericResponse{data=dto.ProductResponse}
// @Failure      404  {object}  dto.GenericResponse
// @Router       /api/product/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// GetAll godoc
// @Summary      Listar productos
// @Tags         product
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.GenericResponse{data=[]dto.ProductResponse}
// @Router       /api/product [get]
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.GetAll(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos a aplicar"
// @Success      200   {object}  dto.GenericResponse{data=dto.ProductResponse}
// @Failure      400   {object}  dto.GenericResponse
// @Failure      404   {object}  dto.GenericResponse
// @Router       /api/product/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
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
// @Summary      Eliminar producto
// @Tags         product
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.GenericResponse
// @Router       /api/product/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
