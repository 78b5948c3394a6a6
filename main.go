package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/HSouheill/client_desk/config"
	"github.com/HSouheill/client_desk/controllers"
	"github.com/HSouheill/client_desk/logger"
	"github.com/HSouheill/client_desk/middleware"
	"github.com/HSouheill/client_desk/repositories"
	"github.com/HSouheill/client_desk/routes"
	"github.com/HSouheill/client_desk/services"
	"github.com/HSouheill/client_desk/telemetry"
	"github.com/HSouheill/client_desk/validation"
	"github.com/HSouheill/client_desk/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.LogFormat == "json" || cfg.IsProduction() {
		logger.SetJSON()
	}
	logger.SetLevel(cfg.LogLevel)

	// amounts leave the API as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.OTelExporter, cfg.Env)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to set up tracing")
	}

	client, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	db := client.Database(cfg.DBName)

	var sessions repositories.SessionStore
	if rdb := config.ConnectRedis(cfg.Redis); rdb != nil {
		sessions = repositories.NewRedisSessionStore(rdb)
		defer rdb.Close()
	} else {
		mem := repositories.NewMemorySessionStore()
		go mem.RunCleanup(ctx, time.Hour)
		sessions = mem
	}

	hub := websocket.NewHub()
	go hub.Run(ctx)

	v := validation.New()
	authService := services.NewAuthService(
		repositories.NewUserRepository(db),
		middleware.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL),
		sessions,
	)
	clientService := services.NewClientService(repositories.NewClientRepository(db), v, services.ClientServiceOptions{
		StrictTransitions: cfg.StrictStatusTransitions,
		Location:          cfg.Location(),
		Publisher:         hub,
	})
	emailService := services.NewEmailService(services.NewSMTPMailer(cfg.SMTP), clientService, cfg.Location())

	seedCtx, cancelSeed := context.WithTimeout(ctx, 10*time.Second)
	if _, err := authService.SeedAdmin(seedCtx, cfg.Admin); err != nil {
		logger.Log.Error().Err(err).Msg("failed to seed admin account")
	}
	cancelSeed()

	if !cfg.SMTP.Configured() {
		logger.Log.Warn().Msg("SMTP not configured; email sends will fail until SMTP_HOST, SMTP_PORT, SMTP_USER and SMTP_PASS are set")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = v
	e.HTTPErrorHandler = middleware.ErrorHandler

	rateLimiter := middleware.NewRateLimiter()
	go rateLimiter.RunCleanup(ctx, time.Hour)

	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(telemetry.ServiceName)))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Metrics())
	e.Use(middleware.CORS(cfg.AllowedOrigins()))
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		ConnectSources: cfg.AllowedOrigins(),
		HSTS:           cfg.IsProduction(),
	}))
	e.Use(rateLimiter.RateLimit())

	deps := routes.Dependencies{
		Auth:        controllers.NewAuthController(authService, v, cfg.CookieSecure),
		Clients:     controllers.NewClientController(clientService),
		Email:       controllers.NewEmailController(emailService),
		RequireAuth: middleware.JWTMiddleware(cfg.JWTSecret, sessions),
		Hub:         hub,
		Upgrader:    websocket.NewUpgrader(cfg.AllowedOrigins()),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
	}
	if cfg.IsProduction() {
		deps.StaticDir = cfg.StaticDir
	}
	routes.SetupRoutes(e, deps)

	go func() {
		logger.Log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logger.Log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error().Err(err).Msg("http shutdown")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Log.Error().Err(err).Msg("mongo disconnect")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Log.Error().Err(err).Msg("tracer shutdown")
	}
}
