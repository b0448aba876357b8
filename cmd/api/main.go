package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inbot/docs"
	"inbot/internal/auth"
	"inbot/internal/config"
	"inbot/internal/database"
	"inbot/internal/database/migration"
	handlers "inbot/internal/http/handler"
	"inbot/internal/http/middleware"
	"inbot/internal/llm"
	"inbot/internal/logging"
	"inbot/internal/otel"
	"inbot/internal/repository/postgres"
	"inbot/internal/service"
	"inbot/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title						Inbot API
// @version					1.0
// @description				Document upload, question answering, translation and analytics.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	// Load configuration (.env auto-loaded if present, then config.toml, then the environment)
	cfg, err := config.Load()
	if err != nil {
		logging.Default().Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := logging.New(os.Stdout, cfg.Location(), cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	redisClient, err := auth.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	llmClient, err := llm.NewOpenAI(cfg.OpenAI, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize llm client")
	}

	// Initialize repositories and services
	fileRepo := postgres.NewFilePostgres(db)
	convRepo := postgres.NewConversationPostgres(db)
	msgRepo := postgres.NewMessagePostgres(db)
	translationRepo := postgres.NewTranslationPostgres(db)
	userRepo := postgres.NewUserPostgres(db)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.TokenTTL())
	revocations := auth.NewRedisRevocationStore(redisClient)

	fileSvc := service.NewFileService(objStore, fileRepo, llmClient, logger)
	svcs := handlers.Services{
		Auth:          service.NewAuthService(userRepo, tokens, revocations),
		Files:         fileSvc,
		Conversations: service.NewConversationService(fileSvc, convRepo, msgRepo, llmClient, logger),
		Translations:  service.NewTranslationService(fileSvc, translationRepo, llmClient),
		Analytics:     service.NewAnalyticsService(fileRepo, convRepo, msgRepo, cfg.Location()),
		Profile:       service.NewProfileService(objStore, userRepo, logger),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.MaxUploadMB * 1024 * 1024,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register metrics")
	}

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs, middleware.Auth(tokens, revocations))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("tracer shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
	logger.Info().Msg("server stopped")
}
