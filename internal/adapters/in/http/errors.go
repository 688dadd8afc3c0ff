package http

import (
	"errors"
	"net/http"
	"strings"

	"registry/internal/core/domain/model/order"
	"registry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	msgOrderNotFound       = "Order not found"
	msgUserNotFound        = "User not found"
	msgCreateOrderInvalid  = "userId and items array are required"
	msgCreateUserInvalid   = "Email and name are required"
	msgInternalServerError = "Internal server error"
	msgInvalidStatusPrefix = "Invalid status. Must be one of: "
)

// invalidStatusMessage lists the legal statuses in declaration order.
func invalidStatusMessage() string {
	names := lo.Map(order.ValidStatuses(), func(s order.Status, _ int) string {
		return s.String()
	})
	return msgInvalidStatusPrefix + strings.Join(names, ", ")
}

func errorJSON(c echo.Context, code int, message string) error {
	return c.JSON(code, ErrorResponse{Error: message})
}

// writeError maps use case errors onto the fixed client messages.
// Anything unclassified is logged and reported as 500 without internals.
func writeError(c echo.Context, logger *zap.Logger, err error, notFound, invalid string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(c, http.StatusNotFound, notFound)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(c, http.StatusBadRequest, invalid)
	default:
		logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return errorJSON(c, http.StatusInternalServerError, msgInternalServerError)
	}
}
