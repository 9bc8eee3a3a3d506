package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers load balancer probes
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
