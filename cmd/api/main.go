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
	"github.com/jhoicas/creditmemo-api/internal/application/auth"
	"github.com/jhoicas/creditmemo-api/internal/application/creditmemo"
	infrapdf "github.com/jhoicas/creditmemo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/creditmemo-api/internal/infrastructure/postgres"
	infraubl "github.com/jhoicas/creditmemo-api/internal/infrastructure/ubl"
	httpRouter "github.com/jhoicas/creditmemo-api/internal/interfaces/http"
	"github.com/jhoicas/creditmemo-api/pkg/config"
	"github.com/jhoicas/creditmemo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	orderRepo := postgres.NewOrderRepository(pool)
	unitRepo := postgres.NewOrderItemUnitRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	creditMemoRepo := postgres.NewCreditMemoRepository(pool)
	sequenceRepo := postgres.NewCreditMemoSequenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Generador: líneas (unidades → envíos) → tax items → snapshots → número/id/fecha
	clock := creditmemo.SystemClock{}
	generator := creditmemo.NewCreditMemoGenerator(
		orderRepo,
		creditmemo.NewOrderItemUnitLineItemGenerator(unitRepo),
		creditmemo.NewShipmentLineItemGenerator(shipmentRepo),
		creditmemo.NewTaxItemsGenerator(),
		creditmemo.NewSequentialNumberGenerator(sequenceRepo, clock, cfg.CreditMemo.NumberStart, cfg.CreditMemo.NumberLength),
		clock,
		creditmemo.NewIdentifierGenerator(cfg.CreditMemo.IDFormat),
	)

	refundUC := creditmemo.NewRefundUseCase(generator, txRunner, log)
	queryUC := creditmemo.NewQueryUseCase(creditMemoRepo)
	documentUC := creditmemo.NewDocumentUseCase(
		creditMemoRepo,
		infrapdf.NewMarotoPDFGenerator(cfg.CreditMemo.PDFAuthor),
		infraubl.NewBuilder(),
	)
	authUC := auth.NewAuthUseCase(
		auth.AdminCredentials{Username: cfg.Admin.Username, PasswordHash: cfg.Admin.PasswordHash},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)
	if cfg.Admin.PasswordHash == "" {
		log.Warn().Msg("ADMIN_PASSWORD_HASH vacío: /api/auth/token rechazará todas las peticiones")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Credit Memo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		RefundUC:   refundUC,
		QueryUC:    queryUC,
		DocumentUC: documentUC,
		JWTSecret:  cfg.JWT.Secret,
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
