package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appbilling "github.com/tu-usuario/billing-api/internal/application/billing"
	"github.com/tu-usuario/billing-api/internal/application/usecase"
	"github.com/tu-usuario/billing-api/internal/application/validate"
	"github.com/tu-usuario/billing-api/internal/infrastructure/externalapi"
	"github.com/tu-usuario/billing-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/billing-api/internal/interfaces/http"
	"github.com/tu-usuario/billing-api/pkg/config"
	"github.com/tu-usuario/billing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	billingRepo := postgres.NewBillingRepository(pool)

	v := validate.New()

	externalSource := externalapi.NewClient(
		cfg.ExternalAPI.URL,
		time.Duration(cfg.ExternalAPI.TimeoutSeconds)*time.Second,
	)

	customerUC := usecase.NewCustomerUseCase(customerRepo, v)
	productUC := usecase.NewProductUseCase(productRepo, v)
	billingUC := appbilling.NewBillingUseCase(billingRepo, customerRepo, productRepo, externalSource, v)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Billing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		ProductUC:  productUC,
		BillingUC:  billingUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
