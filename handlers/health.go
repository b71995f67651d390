package handlers

import (
	"net/http"

	"defensa_juridica_web/db"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the process and its database are up
func HealthHandler(c echo.Context) error {
	status := map[string]string{"status": "ok", "database": "ok"}

	if db.DB == nil {
		status["database"] = "not initialized"
		return c.JSON(http.StatusOK, status)
	}

	sqlDB, err := db.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	return c.JSON(http.StatusOK, status)
}
