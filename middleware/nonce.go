package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

// NonceKey holds the per-request CSP nonce on both the echo and the
// request context
const NonceKey contextKey = "csp_nonce"

// Third-party origins used by the page: Leaflet (unpkg + OSM tiles),
// Turnstile and Google Fonts
const (
	leafletCDN   = "https://unpkg.com"
	osmTiles     = "https://*.tile.openstreetmap.org"
	turnstileCDN = "https://challenges.cloudflare.com"
)

// GenerateNonce returns 16 random bytes, base64url encoded
func GenerateNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// contentSecurityPolicy builds the header value for one request. host is
// the request host, so the slider socket on the same origin is allowed.
func contentSecurityPolicy(nonce, host string, mediaOrigins []string) string {
	img := append([]string{"'self'", "data:", osmTiles, leafletCDN}, mediaOrigins...)
	directives := [][]string{
		{"default-src", "'self'"},
		{"script-src", "'self'", "'nonce-" + nonce + "'", leafletCDN, turnstileCDN},
		{"style-src", "'self'", "'unsafe-inline'", leafletCDN, "https://fonts.googleapis.com"},
		append([]string{"img-src"}, img...),
		{"font-src", "'self'", "https://fonts.gstatic.com"},
		{"connect-src", "'self'", "ws://" + host, "wss://" + host, turnstileCDN},
		{"frame-src", turnstileCDN},
	}

	parts := make([]string, len(directives))
	for i, d := range directives {
		parts[i] = strings.Join(d, " ")
	}
	return strings.Join(parts, "; ")
}

// CSPNonce sets a fresh nonce and the Content-Security-Policy header on
// every request. mediaOrigins are extra image origins (the public media
// bucket).
func CSPNonce(mediaOrigins ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("nonce generation failed: %v", err))
			}

			c.Set(string(NonceKey), nonce)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy",
				contentSecurityPolicy(nonce, c.Request().Host, mediaOrigins))
			return next(c)
		}
	}
}

// GetNonce returns the nonce stored in ctx, or ""
func GetNonce(ctx context.Context) string {
	nonce, _ := ctx.Value(NonceKey).(string)
	return nonce
}
