// @title                       Directorio Escolar API
// @version                     1.0
// @description                 API del directorio escolar: consulta, selección y acciones sobre usuarios.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/language"

	_ "github.com/jhoicas/directorio-escolar/docs"
	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
	"github.com/jhoicas/directorio-escolar/internal/infrastructure/export"
	"github.com/jhoicas/directorio-escolar/internal/infrastructure/memory"
	"github.com/jhoicas/directorio-escolar/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/directorio-escolar/internal/infrastructure/pdf"
	"github.com/jhoicas/directorio-escolar/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/directorio-escolar/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/directorio-escolar/internal/interfaces/http"
	"github.com/jhoicas/directorio-escolar/internal/observability"
	"github.com/jhoicas/directorio-escolar/pkg/config"
	"github.com/jhoicas/directorio-escolar/pkg/debounce"
	"github.com/jhoicas/directorio-escolar/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

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
		Str("store", cfg.Directory.StoreDriver).
		Str("vistas", cfg.Directory.SavedViewsDriver).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// PostgreSQL solo si algún almacén lo usa
	var pool *pgxpool.Pool
	if cfg.Directory.StoreDriver == config.DriverPostgres || cfg.Directory.SavedViewsDriver == config.DriverPostgres {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema del directorio")
		}
	}

	// Colección de personas y bitácora
	var (
		personRepo repository.PersonRepository
		logRepo    repository.ActivityLogRepository
	)
	switch cfg.Directory.StoreDriver {
	case config.DriverPostgres:
		n, err := postgres.NewTxRunner(pool).Seed(ctx, memory.SeedPeople())
		if err != nil {
			log.Fatal().Err(err).Msg("carga inicial del directorio")
		}
		if n > 0 {
			log.Info().Int("personas", n).Msg("directorio inicializado con datos de ejemplo")
		}
		personRepo = postgres.NewPersonRepository(pool)
		logRepo = postgres.NewActivityLogRepository(pool)
	default:
		mem, err := memory.NewPersonRepository(memory.SeedPeople())
		if err != nil {
			log.Fatal().Err(err).Msg("datos de ejemplo inválidos")
		}
		personRepo = mem
		logRepo = memory.NewActivityLogRepository()
	}

	// Vistas guardadas
	var views appdir.SavedViewStore
	switch cfg.Directory.SavedViewsDriver {
	case config.DriverRedis:
		client, err := infraredis.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		views = infraredis.NewSavedViewStore(client, cfg.Redis.Prefix)
	case config.DriverPostgres:
		views = postgres.NewSavedViewRepository(pool)
	default:
		views = memory.NewSavedViewRepository()
	}

	// Notificaciones: siempre al log, además a NATS si está configurado
	notifiers := notify.Multi{notify.NewLogNotifier(log.Zerolog())}
	if cfg.NATS.URL != "" {
		nc, err := notify.ConnectNATS(cfg.NATS.URL, cfg.App.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a NATS")
		}
		defer nc.Drain()
		notifiers = append(notifiers, notify.NewNATSNotifier(nc, cfg.NATS.Subject, cfg.App.Name))
	}

	exportOpts := export.Options{EmailDomain: cfg.Directory.EmailDomain, Detailed: cfg.Directory.ExportDetailed}
	var exporter appdir.Exporter = export.NewCSVExporter(exportOpts)
	if cfg.Directory.ExportFormat == "xml" {
		exporter = export.NewXMLExporter(exportOpts)
	}

	lang, err := language.Parse(cfg.Directory.Locale)
	if err != nil {
		log.Warn().Err(err).Str("locale", cfg.Directory.Locale).Msg("locale inválido, se usa español")
		lang = language.Spanish
	}

	metrics := observability.NewDirectoryMetrics()

	roster, err := appdir.NewRoster(ctx, personRepo, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("carga del directorio")
	}
	engine := dirdomain.NewEngine(dirdomain.Options{
		EmailDomain:         cfg.Directory.EmailDomain,
		Language:            lang,
		GuardianLevelPolicy: dirdomain.GuardianLevelPolicy(cfg.Directory.GuardianLevelPolicy),
	})
	coordinator := appdir.NewCoordinator(appdir.CoordinatorDeps{
		Roster:      roster,
		Logs:        logRepo,
		Notifier:    notifiers,
		Exporter:    exporter,
		Carnets:     infrapdf.NewCarnetGenerator(cfg.Directory.SchoolName),
		Metrics:     metrics,
		Logger:      log.Zerolog(),
		Actor:       cfg.Directory.Actor,
		EmailDomain: cfg.Directory.EmailDomain,
	})
	manager := appdir.NewManager(roster, engine, views, coordinator, appdir.SessionConfig{
		PageSize: cfg.Directory.PageSize,
		Window:   cfg.Directory.Debounce,
		Clock:    debounce.RealClock{},
		Metrics:  metrics,
	}, log.Zerolog())
	go manager.RunJanitor(ctx, time.Minute, cfg.Directory.SessionIdle)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(observability.HTTPMetrics())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Directorio Escolar API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", observability.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Directory:   manager,
		EmailDomain: cfg.Directory.EmailDomain,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
