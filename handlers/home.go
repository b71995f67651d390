package handlers

import (
	"defensa_juridica_web/config"
	"defensa_juridica_web/middleware"
	"defensa_juridica_web/services"
	"defensa_juridica_web/services/slider"
	"defensa_juridica_web/templates/pages"

	"github.com/labstack/echo/v4"
)

// SliderSocketPath is where the carousel connects for its live state
const SliderSocketPath = "/ws/slider"

// HomeHandler renders the one-page site. The carousel is rendered in the
// initial state a fresh controller would have; the socket takes over once
// the page script connects.
func HomeHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	ctx := c.Request().Context()

	sliderCfg := SliderConfig(cfg)
	slides := services.DefaultSlides(services.Storage)
	initial := slider.NewController(len(slides), sliderCfg, nil).Snapshot()

	vm := pages.HomeViewModel{
		SEO:              GetSEO(ctx, cfg, "home"),
		Slides:           slides,
		SliderState:      initial,
		SliderConfig:     sliderCfg,
		SliderSocketURL:  SliderSocketPath,
		Office:           services.DefaultOffice(),
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: cfg.TurnstileSiteKey,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return pages.Home(vm).Render(ctx, c.Response().Writer)
}
