package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apihttp "registry/internal/adapters/in/http"
	"registry/internal/adapters/out/memory/orderrepo"
	"registry/internal/adapters/out/memory/userrepo"
	"registry/internal/core/application/usecases/commands"
	"registry/internal/core/application/usecases/queries"
	"registry/internal/core/ports"
	"registry/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderAPI(t *testing.T, repo ports.OrderRepository) *echo.Echo {
	t.Helper()

	server := apihttp.NewOrderServer(
		commands.NewCreateOrderCommandHandler(repo),
		commands.NewChangeOrderStatusCommandHandler(repo),
		commands.NewDeleteOrderCommandHandler(repo),
		queries.NewListOrdersQueryHandler(repo),
		queries.NewGetOrderQueryHandler(repo),
		zap.NewNop(),
	)
	e, err := apihttp.NewRouter(t.Context(), apihttp.RouterConfig{
		Name:     "order",
		Service:  "order-service",
		Version:  "1.2.0",
		LogLevel: log.OFF,
		Logger:   zap.NewNop(),
		Registry: metrics.NewRegistry(),
	}, server)
	require.NoError(t, err)
	return e
}

func newOrderAPIWithStore(t *testing.T) *echo.Echo {
	t.Helper()
	return newOrderAPI(t, orderrepo.NewInMemoryOrderRepository())
}

func newUserAPI(t *testing.T) *echo.Echo {
	t.Helper()

	repo := userrepo.NewInMemoryUserRepository()
	server := apihttp.NewUserServer(
		commands.NewCreateUserCommandHandler(repo),
		commands.NewDeleteUserCommandHandler(repo),
		queries.NewListUsersQueryHandler(repo),
		queries.NewGetUserQueryHandler(repo),
		zap.NewNop(),
	)
	e, err := apihttp.NewRouter(t.Context(), apihttp.RouterConfig{
		Name:     "user",
		Service:  "user-service",
		Version:  "1.0.0",
		LogLevel: log.OFF,
		Logger:   zap.NewNop(),
		Registry: metrics.NewRegistry(),
	}, server)
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
