package http

import (
	"github.com/gofiber/fiber/v2"

	appbilling "github.com/tu-usuario/billing-api/internal/application/billing"
	"github.com/tu-usuario/billing-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	BillingUC  *appbilling.BillingUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customers := api.Group("/customer")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.GetAll)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	products := api.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.GetAll)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	billings := api.Group("/billing")
	billingHandler := NewBillingHandler(deps.BillingUC)
	// La ruta fija va antes que /:id para que no la capture el parámetro.
	billings.Post("/importFromExternalApi", billingHandler.Import)
	billings.Post("/", billingHandler.Create)
	billings.Get("/", billingHandler.GetAll)
	billings.Get("/:id", billingHandler.GetByID)
	billings.Put("/:id", billingHandler.Update)
	billings.Delete("/:id", billingHandler.Delete)
}
