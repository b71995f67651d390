package handlers

import (
	"encoding/xml"
	"net/http"
	"sort"
	"strings"

	"defensa_juridica_web/config"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the public pages as an XML sitemap
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	names := make([]string, 0, len(publicPages))
	for name := range publicPages {
		names = append(names, name)
	}
	sort.Strings(names)

	urls := make([]SitemapURL, 0, len(names))
	for _, name := range names {
		p := publicPages[name]
		urls = append(urls, SitemapURL{
			Loc:        absoluteURL(cfg.AppURL, p.Path),
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler allows crawling of everything but the API and points to
// the sitemap. Non-production deployments are closed to crawlers.
func GetRobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if !cfg.IsProduction() {
		b.WriteString("Disallow: /\n")
		return c.String(http.StatusOK, b.String())
	}
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /ws/\n")
	b.WriteString("\nSitemap: " + absoluteURL(cfg.AppURL, "/sitemap.xml") + "\n")
	return c.String(http.StatusOK, b.String())
}
