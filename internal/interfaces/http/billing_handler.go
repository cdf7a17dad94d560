package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-api/internal/application/billing"
	"github.com/tu-usuario/billing-api/internal/application/dto"
)

// BillingHandler maneja las peticiones HTTP del agregado Billing.
type BillingHandler struct {
	uc *billing.BillingUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(uc *billing.BillingUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// Import godoc
// @Summary      Importar factura desde la API externa
// @Description  Trae el feed del tercero e importa el primer registro.
// @Tags         billing
// @Produce      json
// @Success      204
// @Failure      404  {object}  dto.GenericResponse
// @Failure      500  {object}  dto.GenericResponse
// @Router       /api/billing/importFromExternalApi [post]
func (h *BillingHandler) Import(c *fiber.Ctx) error {
	if err := h.uc.ImportFromExternalAPI(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Create godoc
// @Summary      Crear factura con líneas
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BillingRequest  true  "Factura a crear"
// @Success      200   {object}  dto.GenericResponse{data=dto.BillingResponse}
// @Failure      400   {object}  dto.GenericResponse
// @Failure      404   {object}  dto.GenericResponse
// @Router       /api/billing [post]
func (h *BillingHandler) Create(c *fiber.Ctx) error {
	var in dto.BillingRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody())
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         billing
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.GenericResponse{data=dto.BillingResponse}
// @Failure      404  {object}  dto.GenericResponse
// @Router       /api/billing/{id} [get]
func (h *BillingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// GetAll godoc
// @Summary      Listar facturas
// @Tags         billing
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.GenericResponse{data=[]dto.BillingResponse}
// @Router       /api/billing [get]
func (h *BillingHandler) GetAll(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.GetAll(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Actualizar factura (reemplaza las líneas)
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la factura"
// @Param        body  body  dto.BillingRequest  true  "Campos a aplicar"
// @Success      200   {object}  dto.GenericResponse{data=dto.BillingResponse}
// @Failure      400   {object}  dto.GenericResponse
// @Failure      404   {object}  dto.GenericResponse
// @Router       /api/billing/{id} [put]
func (h *BillingHandler) Update(c *fiber.Ctx) error {
	var in dto.BillingRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody())
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         billing
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      204
// @Failure      404  {object}  dto.GenericResponse
// @Router       /api/billing/{id} [delete]
func (h *BillingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageFromQuery lee limit/offset del query string con defaults y tope.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	return page
}
