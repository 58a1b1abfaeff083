package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/rideorchestrator/internal/pkg/config"
	"github.com/piresc/rideorchestrator/internal/pkg/database"
	"github.com/piresc/rideorchestrator/internal/pkg/health"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/metrics"
	nrpkg "github.com/piresc/rideorchestrator/internal/pkg/newrelic"
	"github.com/piresc/rideorchestrator/internal/pkg/queue"
	routinggw "github.com/piresc/rideorchestrator/services/routing/gateway"
	routinguc "github.com/piresc/rideorchestrator/services/routing/usecase"
)

// Standalone route estimation workers, for scaling estimation apart from the rides API.
func main() {
	appName := "routing-worker"
	configs := config.InitConfig("config/routing-worker.env")

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	primary, fallback, err := routinggw.NewProviders(configs.Routing)
	if err != nil {
		zapLogger.Fatal("Failed to initialize route providers", logger.Err(err))
	}

	jobs := queue.NewRedisQueue(redisClient.GetClient(), configs.Queue)
	estimator := routinguc.NewEstimator(configs.Routing, primary, fallback)
	worker := routinguc.NewWorker(jobs, estimator, configs.Routing.Workers)

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Run(ctx)
	}()

	logger.Info("Route workers started",
		logger.String("app", appName),
		logger.Int("workers", configs.Routing.Workers),
		logger.Bool("google_maps", primary != nil),
	)

	// Health and metrics only
	e := echo.New()
	e.HideBanner = true
	metrics.Register(e)
	healthService := health.NewService()
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	// In-flight jobs finish before the queue connection goes away
	stop()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		zapLogger.Warn("Route workers did not stop before the shutdown timeout")
	}

	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Worker exiting gracefully")
	_ = zapLogger.Sync()
}
