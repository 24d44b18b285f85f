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
	_ "github.com/jhoicas/logitrack-api/docs"
	"github.com/jhoicas/logitrack-api/internal/application/auth"
	appschedule "github.com/jhoicas/logitrack-api/internal/application/schedule"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/logitrack-api/internal/infrastructure/pdf"
	"github.com/jhoicas/logitrack-api/internal/infrastructure/postgres"
	"github.com/jhoicas/logitrack-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/logitrack-api/internal/interfaces/http"
	"github.com/jhoicas/logitrack-api/pkg/config"
	"github.com/jhoicas/logitrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
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

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	portRepo := postgres.NewPortRepository(pool)
	plantRepo := postgres.NewPlantRepository(pool)
	vesselRepo := postgres.NewVesselRepository(pool)
	rakeRepo := postgres.NewRakeRepository(pool)
	schedRepo := postgres.NewScheduleRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	snapRepo := postgres.NewStockLevelRepository(pool)
	fileRepo := postgres.NewFileRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	blobStore, err := storage.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}

	activityUC := usecase.NewActivityUseCase(activityRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, activityUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	scheduleUC := appschedule.NewScheduleUseCase(
		txRunner, schedRepo, supplierRepo, portRepo, plantRepo, vesselRepo, rakeRepo, activityUC,
	)
	locationUC := usecase.NewLocationUseCase(
		supplierRepo, portRepo, plantRepo, vesselRepo, rakeRepo, schedRepo, activityUC,
	)
	reportUC := usecase.NewReportUseCase(reportRepo, snapRepo)
	exportUC := usecase.NewExportUseCase(schedRepo, snapRepo)
	fileUC := usecase.NewFileUseCase(fileRepo, blobStore, activityUC)
	plannerUC := usecase.NewPlannerUseCase(schedRepo)
	pdfGen := infrapdf.NewMarotoReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LogiTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ScheduleUC: scheduleUC,
		LocationUC: locationUC,
		ReportUC:   reportUC,
		ExportUC:   exportUC,
		FileUC:     fileUC,
		PlannerUC:  plannerUC,
		ActivityUC: activityUC,
		PDFGen:     pdfGen,
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
