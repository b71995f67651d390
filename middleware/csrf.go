package middleware

import (
	"net/http"
	"strings"

	"defensa_juridica_web/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// csrfContextKey is where echo's CSRF middleware stores the token
const csrfContextKey = "csrf"

// CSRF protects form posts. The token travels in the _csrf form field or
// the X-CSRF-Token header. Skipped: the slider socket, /metrics and the
// contact endpoint, which answers every failure in its own JSON shape and
// is guarded by the rate limiter, Turnstile and SameSite cookies.
func CSRF(cfg *config.Config) echo.MiddlewareFunc {
	return echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "form:_csrf,header:X-CSRF-Token",
		ContextKey:     csrfContextKey,
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		CookieSameSite: http.SameSiteLaxMode,
		Skipper:        skipCSRF,
	})
}

// ContactPath is the contact form endpoint
const ContactPath = "/api/contact"

func skipCSRF(c echo.Context) bool {
	path := c.Path()
	return strings.HasPrefix(path, "/ws/") || path == "/metrics" || path == ContactPath
}

// GetCSRFToken returns the token for the current request, or ""
func GetCSRFToken(c echo.Context) string {
	token, _ := c.Get(csrfContextKey).(string)
	return token
}
