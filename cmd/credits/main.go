package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/lotaya/internal/pkg/config"
	"github.com/piresc/lotaya/internal/pkg/database"
	"github.com/piresc/lotaya/internal/pkg/health"
	"github.com/piresc/lotaya/internal/pkg/identity"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/middleware"
	natspkg "github.com/piresc/lotaya/internal/pkg/nats"
	nrpkg "github.com/piresc/lotaya/internal/pkg/newrelic"
	"github.com/piresc/lotaya/internal/pkg/server"
	creditsgateway "github.com/piresc/lotaya/services/credits/gateway"
	creditshandler "github.com/piresc/lotaya/services/credits/handler"
	creditshttp "github.com/piresc/lotaya/services/credits/handler/http"
	creditsrepo "github.com/piresc/lotaya/services/credits/repository"
	creditsusecase "github.com/piresc/lotaya/services/credits/usecase"
	paymentgateway "github.com/piresc/lotaya/services/payment/gateway"
	paymenthandler "github.com/piresc/lotaya/services/payment/handler"
	paymenthttp "github.com/piresc/lotaya/services/payment/handler/http"
	paymentrepo "github.com/piresc/lotaya/services/payment/repository"
	paymentusecase "github.com/piresc/lotaya/services/payment/usecase"
	"go.uber.org/zap"
)

func main() {
	configs := config.InitConfig(".env")
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("pgw_env", configs.PGW.Env),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("logger", func(context.Context) error {
		return zapLogger.Close()
	})
	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdown.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})

	if configs.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := postgresClient.EnsureSchema(ctx)
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to apply database schema", zap.Error(err))
		}
	}

	// Redis only backs the profile mirror and rate limits
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Warn("Redis unavailable, profile mirror and rate limits disabled", zap.Error(err))
		redisClient = nil
	} else {
		shutdown.Register("redis", func(context.Context) error {
			return redisClient.Close()
		})
	}

	var natsClient *natspkg.Client
	if configs.NATS.Enabled {
		natsClient, err = natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			zapLogger.Warn("NATS unavailable, domain events disabled", zap.Error(err))
			natsClient = nil
		} else {
			shutdown.Register("nats", func(context.Context) error {
				natsClient.Close()
				return nil
			})
		}
	}

	verifier, err := identity.NewVerifier(configs.Identity, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize identity verifier", zap.Error(err))
	}

	// Initialize repositories
	creditsRepo := creditsrepo.NewCreditsRepo(postgresClient.GetDB())
	paymentRepo := paymentrepo.NewPaymentRepo(postgresClient.GetDB())

	// Initialize gateways
	mirrorTTL := time.Duration(configs.Redis.MirrorTTL) * time.Second
	creditsGW := creditsgateway.NewCreditsGW(redisClient, natsClient, mirrorTTL)
	paymentGW := paymentgateway.NewPaymentGW(configs.PGW, natsClient)

	// Initialize usecases
	creditsUC := creditsusecase.NewCreditsUC(creditsRepo, creditsGW, configs)
	paymentUC := paymentusecase.NewPaymentUC(paymentRepo, paymentGW, creditsUC, configs)

	// Initialize handlers
	creditsHandler := creditshandler.NewHandler(
		creditshttp.NewAuthHandler(creditsUC),
		creditshttp.NewUserHandler(creditsUC),
		creditshttp.NewCreditsHandler(creditsUC),
	)
	paymentHandler := paymenthandler.NewHandler(paymenthttp.NewPaymentHandler(paymentUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger, appName))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: configs.Server.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Health checks
	hs := health.NewHealthService(zapLogger)
	hs.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	if redisClient != nil {
		hs.AddOptionalChecker("redis", health.NewRedisHealthChecker(redisClient))
	}
	if natsClient != nil {
		hs.AddOptionalChecker("nats", health.NewNATSHealthChecker(natsClient))
	}
	if checker, ok := verifier.(health.HealthChecker); ok {
		hs.AddOptionalChecker("identity", checker)
	}
	health.RegisterHealthEndpoints(e, appName, hs)

	// Register service routes
	api := e.Group("/api")
	api.GET("/health", hs.Handler(appName))

	auth := middleware.AuthMiddleware(verifier, zapLogger)

	var registerLimit, initiateLimit []echo.MiddlewareFunc
	if configs.RateLimit.Enabled && redisClient != nil {
		registerLimit = append(registerLimit,
			middleware.IPRateLimiter(configs.RateLimit.RegisterPerMinute, time.Minute, redisClient.GetClient(), zapLogger))
		initiateLimit = append(initiateLimit,
			middleware.UserRateLimiter(configs.RateLimit.PaymentPerMinute, time.Minute, redisClient.GetClient(), zapLogger))
	}

	creditsHandler.RegisterRoutes(api, auth, registerLimit...)
	paymentHandler.RegisterRoutes(api, auth, initiateLimit...)

	// Start server
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.String("app", appName), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		log.Printf("Shutdown completed with errors: %v", err)
	}
}
