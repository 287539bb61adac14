package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/taxhelper-api/internal/application/business"
	"github.com/jhoicas/taxhelper-api/internal/application/taxation"
	"github.com/jhoicas/taxhelper-api/internal/domain/repository"
	"github.com/jhoicas/taxhelper-api/internal/domain/tax"
	"github.com/jhoicas/taxhelper-api/internal/infrastructure/cache"
	"github.com/jhoicas/taxhelper-api/internal/infrastructure/hometax"
	"github.com/jhoicas/taxhelper-api/internal/infrastructure/memory"
	infrants "github.com/jhoicas/taxhelper-api/internal/infrastructure/nts"
	infrapdf "github.com/jhoicas/taxhelper-api/internal/infrastructure/pdf"
	"github.com/jhoicas/taxhelper-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/taxhelper-api/internal/interfaces/http"
	"github.com/jhoicas/taxhelper-api/pkg/config"
	"github.com/jhoicas/taxhelper-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

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
		Str("level", logger.ParseLevel(cfg.App.LogLevel).String()).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Persistencia: PostgreSQL si está configurado; si no, perfiles en memoria.
	rates := tax.DefaultRateTable()
	var profiles repository.BusinessProfileRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		profiles = postgres.NewBusinessProfileRepository(pool)

		loaded, overridden, err := postgres.NewRateTableRepository(pool).Load(ctx, rates)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("tarifas de la base de datos inválidas, se usan las tarifas por defecto")
		case overridden:
			rates = loaded
			log.Info().Msg("tarifas cargadas desde la base de datos")
		}
	} else {
		log.Warn().Msg("sin base de datos configurada: los perfiles se guardan en memoria")
		profiles = memory.NewBusinessProfileRepository()
	}

	// Caché de consultas al NTS (opcional)
	var statusCache business.StatusCache
	var registryCache *cache.RegistryCache
	if cfg.Redis.URL != "" {
		rc, err := cache.NewRegistryCache(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, consultas al NTS sin caché")
		} else {
			registryCache = rc
			statusCache = rc
			defer rc.Close()
		}
	}

	if cfg.NTS.ServiceKey == "" {
		log.Warn().Msg("NTS_SERVICE_KEY vacío: las consultas al registro fallarán")
	}
	registry := infrants.NewClient(cfg.NTS.BaseURL, cfg.NTS.ServiceKey, cfg.NTS.Timeout)

	taxSvc := taxation.NewService(rates, tax.StandaloneBrackets)
	businessUC := business.NewUseCase(registry, statusCache, profiles, business.Config{
		Production: cfg.App.IsProduction(),
		CacheTTL:   cfg.Redis.CacheTTL,
	}, log.Named("business"))

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Tax Helper API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("documentación Swagger no encontrada")
	}

	deps := httpRouter.RouterDeps{
		Tax:       taxSvc,
		Reports:   infrapdf.NewMarotoReportGenerator(),
		Filings:   hometax.NewXMLBuilder(),
		Business:  businessUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	}
	if registryCache != nil {
		deps.RegistryCache = registryCache
	}
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
