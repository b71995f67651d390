package handlers

import (
	"context"
	"strings"

	"defensa_juridica_web/config"
	"defensa_juridica_web/models"
	"defensa_juridica_web/services"
	"defensa_juridica_web/services/i18n"
)

// PublicPage is a page listed in the sitemap and given SEO metadata
type PublicPage struct {
	Path       string
	TitleKey   string
	DescKey    string
	Keywords   string
	ChangeFreq string
	Priority   float32
}

// publicPages are the indexable pages of the site
var publicPages = map[string]PublicPage{
	"home": {
		Path:       "/",
		TitleKey:   "site.name",
		DescKey:    "site.description",
		Keywords:   "abogados Puerto Montt, estudio jurídico, derecho civil, derecho de familia, derecho laboral, defensa penal",
		ChangeFreq: "weekly",
		Priority:   1.0,
	},
}

// GetSEO returns the localized SEO metadata of a page, or nil when the page
// is unknown
func GetSEO(ctx context.Context, cfg *config.Config, page string) *models.SEO {
	p, ok := publicPages[page]
	if !ok {
		return nil
	}

	lang := i18n.GetLocale(ctx)
	var alternates []string
	for _, l := range i18n.Supported {
		if l != lang {
			alternates = append(alternates, l)
		}
	}

	seo := models.DefaultSEO(i18n.T(ctx, p.TitleKey), i18n.T(ctx, p.DescKey)).
		WithCanonical(absoluteURL(cfg.AppURL, p.Path)).
		WithLocale(lang, alternates...)
	seo.Keywords = p.Keywords
	seo.OGImage = absoluteURL(cfg.AppURL, defaultOGImage())
	return seo
}

// defaultOGImage is the first carousel image
func defaultOGImage() string {
	return services.DefaultSlides(services.Storage)[0].Image.Fallback()
}

// absoluteURL resolves a site path against base. Absolute URLs pass through.
func absoluteURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(base, "/") + path
}
