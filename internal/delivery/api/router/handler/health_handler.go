package handler

import (
	"net/http"

	"pitstop/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness only.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
