package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"defensa_juridica_web/config"
	"defensa_juridica_web/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLocale(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		cookie     string
		accept     string
		want       string
		wantCookie string
	}{
		{name: "Query wins over cookie", target: "/?lang=en", cookie: "es", want: "en", wantCookie: "en"},
		{name: "Unsupported query falls back", target: "/?lang=fr", want: "es", wantCookie: "es"},
		{name: "Cookie wins over header", target: "/", cookie: "en", accept: "es-CL,es;q=0.9", want: "en"},
		{name: "Unsupported cookie ignored", target: "/", cookie: "de", accept: "en-US", want: "en"},
		{name: "Header picks first supported", target: "/", accept: "fr-FR,en-US;q=0.8,es;q=0.5", want: "en"},
		{name: "Default", target: "/", want: "es"},
	}

	e := echo.New()
	cfg := &config.Config{Environment: "development"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxLang interface{}
			handler := Locale(cfg)(func(c echo.Context) error {
				ctxLang = c.Request().Context().Value(i18n.LocaleContextKey)
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			assert.Equal(t, tt.want, GetLocale(c))
			assert.Equal(t, tt.want, ctxLang)

			cookie := findCookie(rec, "lang")
			if tt.wantCookie == "" {
				assert.Nil(t, cookie)
				return
			}
			require.NotNil(t, cookie)
			assert.Equal(t, tt.wantCookie, cookie.Value)
			assert.False(t, cookie.Secure)
		})
	}
}

func TestLocale_SecureCookieInProduction(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	handler := Locale(&config.Config{Environment: "production"})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	cookie := findCookie(rec, "lang")
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
}

func TestGetLocaleDefault(t *testing.T) {
	c := echo.New().NewContext(nil, nil)
	assert.Equal(t, "es", GetLocale(c))
}
