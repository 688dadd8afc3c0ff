package http

import (
	"registry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// pathID reads the :id route parameter. Ids are issued in canonical
// lowercase hyphenated form, so any other spelling names no record.
func pathID(c echo.Context) (kernel.UUID, bool) {
	raw := c.Param("id")
	id, err := kernel.UUIDFromString(raw)
	if err != nil || id.String() != raw {
		return kernel.UUID{}, false
	}
	return id, true
}
