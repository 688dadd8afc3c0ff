package http

import (
	"context"
	"net/http"

	"registry/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// RouterConfig describes the service an echo instance is built for.
type RouterConfig struct {
	// Name is the short service name, "order" or "user". It selects the
	// OpenAPI document and the metrics subsystem.
	Name string
	// Service is reported by the health endpoint, e.g. "order-service".
	Service  string
	Version  string
	LogLevel log.Lvl
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

// Registrar mounts a service's business routes.
type Registrar interface {
	Register(e *echo.Echo)
}

// NewRouter builds an echo instance with the shared middleware and the
// operational endpoints, then mounts the business routes of server.
// It fails if the embedded OpenAPI document is invalid.
func NewRouter(ctx context.Context, cfg RouterConfig, server Registrar) (*echo.Echo, error) {
	if _, err := LoadOpenAPI(ctx, cfg.Name); err != nil {
		return nil, err
	}
	document, err := OpenAPIDocument(cfg.Name)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.LogLevel)

	e.Use(observe(metrics.NewServerMetrics(cfg.Name, cfg.Registry)))
	e.Use(requestLogger(cfg.Logger.With(zap.String("component", "http"))))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: cfg.Service,
			Version: cfg.Version,
		})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(cfg.Registry)))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", document)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	server.Register(e)
	return e, nil
}
