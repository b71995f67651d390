package components

import (
	"context"
	"io"

	"defensa_juridica_web/models"
	"defensa_juridica_web/services/i18n"
	"defensa_juridica_web/templates/partials"

	"github.com/a-h/templ"
)

// MapOptions is what map.js needs to create the Leaflet map
type MapOptions struct {
	Latitude  float64  `json:"lat"`
	Longitude float64  `json:"lng"`
	Zoom      int      `json:"zoom"`
	Popup     string   `json:"popup"`
	Address   []string `json:"address"`
}

// NewMapOptions builds the client options for office
func NewMapOptions(ctx context.Context, office models.Office) MapOptions {
	popup := office.Name
	if popup == "" {
		popup = i18n.T(ctx, "map.popup")
	}
	return MapOptions{
		Latitude:  office.Latitude,
		Longitude: office.Longitude,
		Zoom:      office.Zoom,
		Popup:     popup,
		Address:   office.AddressLines,
	}
}

// OfficeMap renders the location section. The map container is empty until
// map.js mounts Leaflet into it; the address stays readable without scripts.
func OfficeMap(office models.Office) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := partials.NewWriter(w)

		h.Raw(`<section id="ubicacion" class="location" aria-labelledby="ubicacion-title">`)
		h.Raw(`<h2 id="ubicacion-title" class="section-title">`)
		h.Text(i18n.T(ctx, "map.title"))
		h.Raw(`</h2><div class="location__grid">`)

		h.Raw(`<address class="location__address"><strong>`)
		h.Text(office.Name)
		h.Raw(`</strong>`)
		for _, line := range office.AddressLines {
			h.Raw(`<br>`)
			h.Text(line)
		}
		h.Raw(`</address>`)

		h.Raw(`<div class="location__map" data-map`)
		h.Attr("data-options", JSON(NewMapOptions(ctx, office)))
		h.Attr("aria-label", i18n.T(ctx, "map.title"))
		h.Raw(` role="region"></div>`)

		h.Raw(`</div></section>`)
		return h.Err()
	})
}
