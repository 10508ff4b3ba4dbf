package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ridefare/internal/app"
	"ridefare/internal/config"
	"ridefare/internal/console"
	"ridefare/internal/handler"
	"ridefare/internal/redis"
	"ridefare/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	mode := "quote"
	if len(args) > 0 && args[0] == "serve" {
		mode, args = "serve", args[1:]
	}

	fs := flag.NewFlagSet("ridefare", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv(config.EnvPrefix+"_CONFIG"), "path to an optional config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger, err := app.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	fareService := service.NewFareService(logger)

	if mode == "serve" {
		if err := serve(cfg, fareService, logger); err != nil {
			logger.Error("server failed", zap.Error(err))
			return 1
		}
		return 0
	}

	runner := console.NewRunner(fareService, logger, cfg.Console.StrictExit)
	return runner.Run(os.Stdin, os.Stdout)
}

// serve runs the HTTP quote API until SIGINT or SIGTERM.
func serve(cfg *config.Config, fareService *service.FareService, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// New Relic first so the Redis client can be instrumented.
	nrApp, err := app.NewNewRelicApp(cfg.NewRelic)
	if err != nil {
		logger.Warn("continuing without New Relic", zap.Error(err))
	} else if nrApp != nil {
		logger.Info("New Relic enabled", zap.String("app", cfg.NewRelic.AppName))
		defer nrApp.Shutdown(5 * time.Second)
	}

	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		logger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	server := wireServer(cfg, fareService, redisClient, nrApp, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(cfg *config.Config, fareService *service.FareService, redisClient *goredis.Client, nrApp *newrelic.Application, logger *zap.Logger) *http.Server {
	deps := app.RouterDeps{
		FareHandler:    handler.NewFareHandler(fareService, logger),
		IdempotencyTTL: cfg.Redis.IdempotencyTTL,
		NewRelicApp:    nrApp,
		Logger:         logger,
	}
	if redisClient != nil {
		deps.ResponseStore = redis.NewResponseStore(redisClient)
	}

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
