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

	"github.com/lucatax/luca-api/internal/application/auth"
	"github.com/lucatax/luca-api/internal/application/onboarding"
	"github.com/lucatax/luca-api/internal/application/ports"
	"github.com/lucatax/luca-api/internal/application/usecase"
	"github.com/lucatax/luca-api/internal/domain/repository"
	"github.com/lucatax/luca-api/internal/infrastructure/postgres"
	"github.com/lucatax/luca-api/internal/infrastructure/storage"
	"github.com/lucatax/luca-api/internal/infrastructure/sunat"
	httpRouter "github.com/lucatax/luca-api/internal/interfaces/http"
	"github.com/lucatax/luca-api/pkg/config"
	"github.com/lucatax/luca-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	obligationRepo := postgres.NewObligationRepository(pool)

	// Directorio SUNAT: padrón embebido para desarrollo/demo, tablas de
	// Postgres cuando hay una réplica del padrón cargada.
	var directory ports.CompanyDirectory
	switch cfg.Onboarding.DirectoryDriver {
	case "postgres":
		directory = postgres.NewDirectoryRepository(pool)
	default:
		directory = sunat.NewStaticDirectory()
	}

	// Borradores: en memoria no sobreviven reinicios; útil en demo.
	var draftStore repository.DraftStore
	switch cfg.Onboarding.DraftStoreDriver {
	case "memory":
		draftStore = storage.NewMemoryStore()
	default:
		draftStore = postgres.NewDraftRepository(pool)
	}

	onboardingUC := onboarding.NewOnboardingUseCase(directory, draftStore, companyRepo, onboarding.Config{
		ValidationDelay:   cfg.Onboarding.ValidationDelay,
		ResumeDraftOnLoad: cfg.Onboarding.ResumeDraftOnLoad,
		TourCloseAfter:    cfg.Onboarding.TourCloseAfter,
	}, log)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	dashboardUC := usecase.NewDashboardUseCase(companyRepo, obligationRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Luca API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OnboardingUC: onboardingUC,
		CompanyUC:    companyUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
