package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/rideorchestrator/internal/pkg/config"
	"github.com/piresc/rideorchestrator/internal/pkg/database"
	"github.com/piresc/rideorchestrator/internal/pkg/health"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/metrics"
	"github.com/piresc/rideorchestrator/internal/pkg/middleware"
	natspkg "github.com/piresc/rideorchestrator/internal/pkg/nats"
	nrpkg "github.com/piresc/rideorchestrator/internal/pkg/newrelic"
	"github.com/piresc/rideorchestrator/internal/pkg/queue"
	billinguc "github.com/piresc/rideorchestrator/services/billing/usecase"
	locationhandler "github.com/piresc/rideorchestrator/services/location/handler"
	locationrepo "github.com/piresc/rideorchestrator/services/location/repository"
	locationuc "github.com/piresc/rideorchestrator/services/location/usecase"
	ridesgw "github.com/piresc/rideorchestrator/services/rides/gateway"
	rideshandler "github.com/piresc/rideorchestrator/services/rides/handler"
	ridesrepo "github.com/piresc/rideorchestrator/services/rides/repository"
	ridesuc "github.com/piresc/rideorchestrator/services/rides/usecase"
	routinggw "github.com/piresc/rideorchestrator/services/routing/gateway"
	routinguc "github.com/piresc/rideorchestrator/services/routing/usecase"
	triprepo "github.com/piresc/rideorchestrator/services/trip/repository"
	tripuc "github.com/piresc/rideorchestrator/services/trip/usecase"
)

func main() {
	appName := "rides-service"
	configPath := "config/rides.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	jobs := queue.NewRedisQueue(redisClient.GetClient(), configs.Queue)

	// Route estimation runs on the queue; this process also hosts workers unless ROUTING_WORKERS=0
	primary, fallback, err := routinggw.NewProviders(configs.Routing)
	if err != nil {
		zapLogger.Fatal("Failed to initialize route providers", logger.Err(err))
	}
	estimator := routinguc.NewEstimator(configs.Routing, primary, fallback)
	routeClient := routinguc.NewRouteClient(jobs, configs.Rides.RouteEstimationTimeout)

	// Initialize repositories
	locationRepo := locationrepo.NewLocationRepository(redisClient)
	rideRepo := ridesrepo.NewRideRepository(postgresClient.GetDB())
	candidateRepo := ridesrepo.NewCandidateRepository(postgresClient.GetDB())
	ledgerRepo := triprepo.NewLedgerRepository(redisClient)
	trackRepo := triprepo.NewTrackRepository(postgresClient.GetDB())

	// Initialize usecases
	locationUC := locationuc.NewLocationUC(configs, locationRepo)
	ledgerUC := tripuc.NewLedgerUC(configs.Tracking, ledgerRepo, trackRepo, jobs)
	fareUC := billinguc.NewFareUC(configs.Pricing)
	rideUC := ridesuc.NewRideUC(
		configs,
		rideRepo,
		candidateRepo,
		locationUC,
		routeClient,
		fareUC,
		ledgerUC,
		ridesgw.NewRedisNotifier(redisClient),
		ridesgw.NewNATSPublisher(natsClient),
	)

	// Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	if configs.Routing.Workers > 0 {
		worker := routinguc.NewWorker(jobs, estimator, configs.Routing.Workers)
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(workerCtx)
		}()
	}
	scheduler := tripuc.NewFlushScheduler(configs.Tracking, ledgerUC, jobs)
	wg.Add(1)
	go func() {
		defer wg.Done()
		scheduler.Run(workerCtx)
	}()

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Panic recovery should be first
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(echomw.RequestID())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	metrics.Register(e)

	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	auth := middleware.JWTAuthMiddleware(configs.JWT)
	internalAuth := middleware.ValidateAPIKey(configs.Server.InternalAPIKey)
	locationhandler.NewHTTPHandler(locationUC).RegisterRoutes(e, auth, internalAuth)
	rideshandler.NewHTTPHandler(rideUC).RegisterRoutes(e, auth, internalAuth)

	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Stopping background workers...")
	stopWorkers()
	wg.Wait()

	zapLogger.Info("Closing PostgreSQL connection...")
	if err := postgresClient.Close(); err != nil {
		zapLogger.Error("Error closing PostgreSQL connection", logger.Err(err))
	}

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
