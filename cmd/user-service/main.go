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
	zl = zl.With(zap.String("service", "user-service"))

	echoLevel, err := cfg.EchoLogLvl()
	if err != nil {
		zl.Fatal("echo log level", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(cfg)

	server := apihttp.NewUserServer(
		app.CreateCreateUserCommandHandler(),
		app.CreateDeleteUserCommandHandler(),
		app.CreateListUsersQueryHandler(),
		app.CreateGetUserQueryHandler(),
		zl,
	)
	e, err := apihttp.NewRouter(context.Background(), apihttp.RouterConfig{
		Name:     "user",
		Service:  "user-service",
		Version:  cfg.UserServiceVersion,
		LogLevel: echoLevel,
		Logger:   zl,
		Registry: metrics.NewRegistry(),
	}, server)
	if err != nil {
		zl.Fatal("failed to build router", zap.Error(err))
	}

	if err = cmd.Serve(e, cfg.UserHTTPPort, cfg, zl); err != nil {
		zl.Error("user service stopped with error", zap.Error(err))
	}
}
