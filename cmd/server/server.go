package main

import (
	"strings"

	"defensa_juridica_web/config"
	"defensa_juridica_web/handlers"
	"defensa_juridica_web/middleware"
	"defensa_juridica_web/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// newServer builds the echo instance with the full middleware stack and
// every route
func newServer(cfg *config.Config, metrics *middleware.Metrics, sliderSocket *handlers.SliderSocket, abuseMonitor *services.AbuseMonitor) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.CSRF(cfg))
	e.Use(middleware.CSPNonce(mediaOrigin(cfg.R2PublicURL)...))
	e.Use(middleware.Locale(cfg))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")
	e.GET(services.MediaPrefix+"*", handlers.MediaHandler)

	// Public routes
	e.GET("/", handlers.HomeHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/metrics", metrics.Handler())
	e.GET(handlers.SliderSocketPath, sliderSocket.Handle)
	e.POST(middleware.ContactPath, handlers.ContactPostHandler(metrics, abuseMonitor), middleware.ContactRateLimiter.Middleware())

	return e
}

// mediaOrigin returns the scheme and host of the public media bucket
func mediaOrigin(publicURL string) []string {
	if publicURL == "" {
		return nil
	}
	parts := strings.SplitN(publicURL, "://", 2)
	if len(parts) != 2 {
		return nil
	}
	host := strings.SplitN(parts[1], "/", 2)[0]
	return []string{parts[0] + "://" + host}
}
