package pages

import (
	"context"
	"io"
	"strings"

	"defensa_juridica_web/middleware"
	"defensa_juridica_web/models"
	"defensa_juridica_web/services/i18n"
	"defensa_juridica_web/templates/partials"

	"github.com/a-h/templ"
)

const (
	leafletCSS      = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	leafletJS       = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
	turnstileScript = "https://challenges.cloudflare.com/turnstile/v0/api.js"
)

// LayoutProps configures the document shell
type LayoutProps struct {
	SEO       *models.SEO
	Scripts   []string // versioned asset names loaded at the end of body
	Leaflet   bool
	Turnstile bool
}

// Layout renders the HTML document around body
func Layout(p LayoutProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := partials.NewWriter(w)
		lang := i18n.GetLocale(ctx)
		nonce := middleware.GetNonce(ctx)

		h.Raw(`<!DOCTYPE html><html`)
		h.Attr("lang", lang)
		h.Raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		renderSEO(ctx, h, p.SEO)

		h.Raw(`<link rel="icon" type="image/png"`)
		h.Attr("href", middleware.AssetURL(ctx, "images/favicon.png"))
		h.Raw(`><link rel="stylesheet"`)
		h.Attr("href", middleware.AssetURL(ctx, "css/style.css"))
		h.Raw(">")
		if p.Leaflet {
			h.Raw(`<link rel="stylesheet" crossorigin=""`)
			h.Attr("href", leafletCSS)
			h.Raw(">")
		}
		h.Raw(`</head><body>`)

		h.Raw(`<a class="skip-link" href="#main">`)
		h.Text(i18n.T(ctx, "site.skip"))
		h.Raw(`</a>`)

		h.Component(ctx, body)

		if p.Leaflet {
			scriptTag(h, leafletJS, nonce, false)
		}
		if p.Turnstile {
			scriptTag(h, turnstileScript, nonce, true)
		}
		for _, name := range p.Scripts {
			scriptTag(h, middleware.AssetURL(ctx, name), nonce, true)
		}
		h.Raw(`</body></html>`)

		return h.Err()
	})
}

func scriptTag(h *partials.Writer, src, nonce string, deferred bool) {
	h.Raw(`<script`)
	h.Attr("src", src)
	h.Attr("nonce", nonce)
	if deferred {
		h.Raw(` defer`)
	}
	h.Raw(`></script>`)
}

// renderSEO writes title, description, canonical, hreflang alternates and
// the Open Graph and Twitter tags
func renderSEO(ctx context.Context, h *partials.Writer, seo *models.SEO) {
	if seo == nil {
		h.Raw(`<title>`)
		h.Text(i18n.T(ctx, "site.name"))
		h.Raw(`</title>`)
		return
	}

	h.Raw(`<title>`)
	h.Text(seo.Title)
	h.Raw(`</title>`)
	meta(h, "name", "description", seo.Description)
	if seo.Keywords != "" {
		meta(h, "name", "keywords", seo.Keywords)
	}
	if seo.NoIndex {
		meta(h, "name", "robots", "noindex, nofollow")
	}
	if seo.Canonical != "" {
		h.Raw(`<link rel="canonical"`)
		h.Attr("href", seo.Canonical)
		h.Raw(">")
		for _, alt := range seo.AltLocales {
			h.Raw(`<link rel="alternate"`)
			h.Attr("hreflang", alt)
			h.Attr("href", withLang(seo.Canonical, alt))
			h.Raw(">")
		}
	}

	meta(h, "property", "og:type", seo.OGType)
	meta(h, "property", "og:title", seo.GetOGTitle())
	meta(h, "property", "og:description", seo.GetOGDesc())
	meta(h, "property", "og:locale", ogLocale(seo.Locale))
	meta(h, "property", "og:site_name", i18n.T(ctx, "site.name"))
	if seo.Canonical != "" {
		meta(h, "property", "og:url", seo.Canonical)
	}
	if seo.OGImage != "" {
		meta(h, "property", "og:image", seo.OGImage)
	}
	meta(h, "name", "twitter:card", seo.TwitterCard)
	meta(h, "name", "twitter:title", seo.GetOGTitle())
	meta(h, "name", "twitter:description", seo.GetOGDesc())
	if seo.OGImage != "" {
		meta(h, "name", "twitter:image", seo.OGImage)
	}
}

func meta(h *partials.Writer, attr, key, content string) {
	if content == "" {
		return
	}
	h.Raw(`<meta`)
	h.Attr(attr, key)
	h.Attr("content", content)
	h.Raw(">")
}

func withLang(url, lang string) string {
	if strings.Contains(url, "?") {
		return url + "&lang=" + lang
	}
	return url + "?lang=" + lang
}

// ogLocale maps a site locale to its Open Graph form
func ogLocale(lang string) string {
	switch lang {
	case "en":
		return "en_US"
	case "es", "":
		return "es_CL"
	}
	return lang
}
