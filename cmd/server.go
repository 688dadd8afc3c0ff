package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Serve runs e on port until SIGINT or SIGTERM, then shuts it down within
// the configured timeout. onShutdown hooks run after the server stops.
func Serve(e *echo.Echo, port string, cfg Config, logger *zap.Logger, onShutdown ...func()) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", zap.String("port", port))
		if err := e.Start(net.JoinHostPort("0.0.0.0", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	err := e.Shutdown(shutdownCtx)
	for _, hook := range onShutdown {
		hook()
	}
	if err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}
