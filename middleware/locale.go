package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"defensa_juridica_web/config"
	"defensa_juridica_web/services/i18n"

	"github.com/labstack/echo/v4"
)

const (
	langCookie    = "lang"
	langCookieAge = 365 * 24 * time.Hour
)

// Locale resolves the page language from, in order, the lang query
// parameter (remembered in a cookie), the lang cookie, Accept-Language and
// the default locale. The result is stored under "locale" on the echo
// context and under i18n.LocaleContextKey on the request context.
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := resolveLocale(c, cfg.IsProduction())

			c.Set("locale", lang)
			ctx := context.WithValue(c.Request().Context(), i18n.LocaleContextKey, lang)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func resolveLocale(c echo.Context, secure bool) string {
	if lang := c.QueryParam("lang"); lang != "" {
		if !i18n.IsSupported(lang) {
			lang = i18n.DefaultLang()
		}
		c.SetCookie(&http.Cookie{
			Name:     langCookie,
			Value:    lang,
			Path:     "/",
			Expires:  time.Now().Add(langCookieAge),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
		return lang
	}
	if cookie, err := c.Cookie(langCookie); err == nil && i18n.IsSupported(cookie.Value) {
		return cookie.Value
	}
	return fromAcceptLanguage(c.Request().Header.Get("Accept-Language"))
}

// fromAcceptLanguage picks the first supported primary tag of the header
func fromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if i18n.IsSupported(primary) {
			return primary
		}
	}
	return i18n.DefaultLang()
}

// GetLocale returns the locale chosen for the request
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok {
		return lang
	}
	return i18n.DefaultLang()
}
