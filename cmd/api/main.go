package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/jhoicas/detailing-dashboard/internal/application/analytics"
	"github.com/jhoicas/detailing-dashboard/internal/application/auth"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/application/usecase"
	"github.com/jhoicas/detailing-dashboard/internal/application/validation"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
	"github.com/jhoicas/detailing-dashboard/internal/infrastructure/api"
	"github.com/jhoicas/detailing-dashboard/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/detailing-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/detailing-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/detailing-dashboard/internal/interfaces/http"
	"github.com/jhoicas/detailing-dashboard/pkg/config"
	"github.com/jhoicas/detailing-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.Upstream.BaseURL).
		Str("session_store", cfg.Session.Store).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Sesión e historial de estados: en memoria o en PostgreSQL.
	var (
		sessions     repository.SessionStorage
		transiciones repository.TransicionRepository
	)
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones PostgreSQL")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		sessions = postgres.NewSessionStorage(pool)
		transiciones = postgres.NewTransicionRepository(pool)
	default:
		sessions = memory.NewSessionStorage()
		transiciones = memory.NewTransicionRepository()
	}

	client := api.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout(), log)
	authRepo := api.NewAuthRepository(client)
	personaRepo := api.NewPersonaRepository(client)
	vehiculoRepo := api.NewVehiculoRepository(client)
	productoRepo := api.NewProductoRepository(client)
	tareaRepo := api.NewTareaRepository(client)
	trabajoRepo := api.NewTrabajoRepository(client)

	stores := store.NewRegistry()
	validator := validation.New()

	authUC := auth.NewAuthUseCase(authRepo, personaRepo, sessions, stores, validator, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	go authUC.RunSweeper(ctx, cfg.Session.SweepInterval())

	vehiculoUC := usecase.NewVehiculoUseCase(vehiculoRepo, validator)

	// PDF: orden de trabajo para el cliente
	pdfGenerator := infrapdf.NewOrdenPDFGenerator(cfg.App.Name)

	deps := httpRouter.RouterDeps{
		AuthUC:      authUC,
		Stores:      stores,
		Navegacion:  usecase.NewNavegacionService(),
		DashboardUC: appanalytics.NewDashboardUseCase(personaRepo, trabajoRepo, productoRepo, log),
		PersonaUC:   usecase.NewPersonaUseCase(personaRepo),
		ClienteUC:   usecase.NewClienteUseCase(personaRepo, validator),
		ProveedorUC: usecase.NewProveedorUseCase(personaRepo, authRepo, validator, cfg.Upstream.ProveedorDefaultPassword),
		VehiculoUC:  vehiculoUC,
		ProductoUC:  usecase.NewProductoUseCase(productoRepo, validator),
		TareaUC:     usecase.NewTareaUseCase(tareaRepo, validator),
		TrabajoUC: usecase.NewTrabajoUseCase(
			trabajoRepo, productoRepo, vehiculoRepo, personaRepo,
			transiciones, pdfGenerator, validator, log,
		),
		BorradorUC: usecase.NewBorradorUseCase(
			personaRepo, tareaRepo, productoRepo, vehiculoUC, trabajoRepo, validator, log,
		),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.AllowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowCredentials: cfg.HTTP.AllowedOrigins != "*",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.SwaggerFile,
		Path:     "docs",
		Title:    "Detailing Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
