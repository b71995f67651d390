package pages

import (
	"context"
	"io"
	"strconv"
	"time"

	"defensa_juridica_web/services/i18n"
	"defensa_juridica_web/templates/components"
	"defensa_juridica_web/templates/partials"

	"github.com/a-h/templ"
)

// Home renders the one-page site: carousel, services, contact form and map
func Home(vm HomeViewModel) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := partials.NewWriter(w)

		renderHeader(ctx, h)

		h.Raw(`<main id="main">`)
		h.Component(ctx, components.Slider(components.SliderProps{
			Slides:    vm.Slides,
			State:     vm.SliderState,
			Config:    vm.SliderConfig,
			SocketURL: vm.SliderSocketURL,
		}))
		renderServices(ctx, h)
		h.Component(ctx, components.ContactForm(components.ContactFormProps{
			Action:           "/api/contact",
			CSRFToken:        vm.CSRFToken,
			TurnstileSiteKey: vm.TurnstileSiteKey,
		}))
		h.Component(ctx, components.OfficeMap(vm.Office))
		h.Raw(`</main>`)

		renderFooter(ctx, h)
		return h.Err()
	})

	return Layout(LayoutProps{
		SEO:       vm.SEO,
		Scripts:   []string{"js/slider.js", "js/map.js", "js/contact.js"},
		Leaflet:   true,
		Turnstile: vm.TurnstileSiteKey != "",
	}, body)
}

func renderHeader(ctx context.Context, h *partials.Writer) {
	h.Raw(`<header class="site-header"><a class="site-header__brand" href="/">`)
	h.Text(i18n.T(ctx, "site.name"))
	h.Raw(`</a><nav class="site-nav"`)
	h.Attr("aria-label", i18n.T(ctx, "site.name"))
	h.Raw(`><ul>`)
	for _, item := range []struct{ key, href string }{
		{"nav.home", "#inicio"},
		{"nav.services", "#servicios"},
		{"nav.contact", "#contacto"},
		{"nav.location", "#ubicacion"},
	} {
		h.Raw(`<li><a`)
		h.Attr("href", item.href)
		h.Raw(">")
		h.Text(i18n.T(ctx, item.key))
		h.Raw(`</a></li>`)
	}
	h.Raw(`</ul>`)

	current := i18n.GetLocale(ctx)
	h.Raw(`<div class="site-nav__lang">`)
	for _, lang := range i18n.Supported {
		h.Raw(`<a`)
		h.Attr("href", "/?lang="+lang)
		h.Attr("hreflang", lang)
		if lang == current {
			h.Attr("aria-current", "true")
		}
		h.Raw(">")
		h.Text(lang)
		h.Raw(`</a>`)
	}
	h.Raw(`</div></nav></header>`)
}

func renderServices(ctx context.Context, h *partials.Writer) {
	h.Raw(`<section id="servicios" class="services" aria-labelledby="servicios-title">`)
	h.Raw(`<h2 id="servicios-title" class="section-title">`)
	h.Text(i18n.T(ctx, "services.title"))
	h.Raw(`</h2><ul class="services__grid">`)
	for _, s := range Services {
		h.Raw(`<li class="services__item"`)
		h.Attr("data-icon", s.Icon)
		h.Raw(`><h3>`)
		h.Text(i18n.T(ctx, "services."+s.Key))
		h.Raw(`</h3></li>`)
	}
	h.Raw(`</ul></section>`)
}

func renderFooter(ctx context.Context, h *partials.Writer) {
	h.Raw(`<footer class="site-footer"><p>&copy; `)
	h.Text(strconv.Itoa(time.Now().Year()))
	h.Raw(` `)
	h.Text(i18n.T(ctx, "site.name"))
	h.Raw(`. `)
	h.Text(i18n.T(ctx, "footer.rights"))
	h.Raw(`</p></footer>`)
}
