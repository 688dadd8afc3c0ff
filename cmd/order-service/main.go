package main

import (
	"context"
	"log"

	"registry/cmd"
	apihttp "registry/internal/adapters/in/http"
	"registry/internal/pkg/logger"
	"registry/internal/pkg/metrics"

	"go.uber.org/zap"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zl = zl.With(zap.String("service", "order-service"))

	echoLevel, err := cfg.EchoLogLvl()
	if err != nil {
		zl.Fatal("echo log level", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(cfg)
	registry := metrics.NewRegistry()

	server := apihttp.NewOrderServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		zl,
	)
	e, err := apihttp.NewRouter(context.Background(), apihttp.RouterConfig{
		Name:     "order",
		Service:  "order-service",
		Version:  cfg.OrderServiceVersion,
		LogLevel: echoLevel,
		Logger:   zl,
		Registry: registry,
	}, server)
	if err != nil {
		zl.Fatal("failed to build router", zap.Error(err))
	}

	jobManager := app.CreateJobManager(metrics.NewOrdersByStatus(registry), zl)
	if err = jobManager.StartAll(); err != nil {
		zl.Fatal("failed to start jobs", zap.Error(err))
	}

	if err = cmd.Serve(e, cfg.OrderHTTPPort, cfg, zl, jobManager.StopAll); err != nil {
		zl.Error("order service stopped with error", zap.Error(err))
	}
}
