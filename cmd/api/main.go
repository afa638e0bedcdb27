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
	_ "github.com/dukkanhq/dukkan-api/docs"
	"github.com/dukkanhq/dukkan-api/internal/application/auth"
	"github.com/dukkanhq/dukkan-api/internal/application/reporting"
	"github.com/dukkanhq/dukkan-api/internal/application/stockwatch"
	"github.com/dukkanhq/dukkan-api/internal/application/usecase"
	"github.com/dukkanhq/dukkan-api/internal/infrastructure/cache"
	infrapdf "github.com/dukkanhq/dukkan-api/internal/infrastructure/pdf"
	"github.com/dukkanhq/dukkan-api/internal/infrastructure/postgres"
	httpRouter "github.com/dukkanhq/dukkan-api/internal/interfaces/http"
	"github.com/dukkanhq/dukkan-api/pkg/config"
	"github.com/dukkanhq/dukkan-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	storeRepo := postgres.NewStoreRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	deviceRepo := postgres.NewDeviceRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, storeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	checkoutUC := usecase.NewCheckoutUseCase(txRunner, saleRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	deviceUC := usecase.NewDeviceUseCase(deviceRepo, customerRepo)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo)
	quotationUC := usecase.NewQuotationUseCase(quotationRepo, customerRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	// Report cache is optional: without REDIS_ADDR every request aggregates.
	var reportCache reporting.SummaryCache = reporting.NoopSummaryCache{}
	if cfg.Redis.Addr != "" {
		reportCache = cache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reporting.NewReportUseCase(saleRepo, userRepo, storeRepo, reportCache, pdfGenerator)

	// Low-stock watcher. IntervalSeconds 0 disables it.
	if cfg.Watcher.IntervalSeconds > 0 {
		watcher := stockwatch.New(storeRepo, productRepo, userRepo, notificationRepo, settingsRepo, log, stockwatch.Config{
			Interval: time.Duration(cfg.Watcher.IntervalSeconds) * time.Second,
			Cooldown: time.Duration(cfg.Watcher.CooldownHours) * time.Hour,
		})
		go watcher.Run(ctx)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dukkan API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		CheckoutUC:     checkoutUC,
		ReportUC:       reportUC,
		NotificationUC: notificationUC,
		CustomerUC:     customerUC,
		DeviceUC:       deviceUC,
		AttendanceUC:   attendanceUC,
		QuotationUC:    quotationUC,
		SettingsUC:     settingsUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	// Stop the watcher loop before draining HTTP.
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
