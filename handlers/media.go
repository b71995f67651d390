package handlers

import (
	"errors"
	"net/http"

	"defensa_juridica_web/services"

	"github.com/labstack/echo/v4"
)

// MediaHandler serves /media/* from the configured media storage
func MediaHandler(c echo.Context) error {
	if services.Storage == nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	key, err := services.CleanMediaKey(c.Param("*"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	body, contentType, err := services.Storage.Get(c.Request().Context(), key)
	if err != nil {
		if !errors.Is(err, services.ErrMediaNotFound) {
			c.Logger().Warnf("Media %s not served: %v", key, err)
		}
		return echo.NewHTTPError(http.StatusNotFound)
	}
	defer body.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=604800")
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	return c.Stream(http.StatusOK, contentType, body)
}
