package components

import (
	"context"
	"math"
	"strings"
	"testing"

	"defensa_juridica_web/models"
	"defensa_juridica_web/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOffice() models.Office {
	return models.Office{
		Name:         "Estudio Jurídico",
		AddressLines: []string{"O'Higgins 167, Edificio Plaza", "Oficina 706, Puerto Montt"},
		Latitude:     -41.4717,
		Longitude:    -72.9396,
		Zoom:         16,
	}
}

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, JSON(map[string]int{"a": 1}))
	assert.Equal(t, "{}", JSON(math.Inf(1)))
}

func TestNewMapOptions(t *testing.T) {
	require.NoError(t, i18n.Load())
	ctx := context.Background()

	opts := NewMapOptions(ctx, testOffice())
	assert.Equal(t, -41.4717, opts.Latitude)
	assert.Equal(t, -72.9396, opts.Longitude)
	assert.Equal(t, 16, opts.Zoom)
	assert.Equal(t, "Estudio Jurídico", opts.Popup)

	unnamed := testOffice()
	unnamed.Name = ""
	en := context.WithValue(ctx, i18n.LocaleContextKey, "en")
	assert.Equal(t, "Law Office", NewMapOptions(en, unnamed).Popup)
}

func TestOfficeMap(t *testing.T) {
	require.NoError(t, i18n.Load())

	html := render(t, context.Background(), OfficeMap(testOffice()))

	assert.Contains(t, html, `id="ubicacion"`)
	assert.Contains(t, html, "Dónde estamos")
	assert.Contains(t, html, "O&#39;Higgins 167, Edificio Plaza")
	assert.Contains(t, html, `data-map`)
	assert.Contains(t, html, "&#34;lat&#34;:-41.4717")
	assert.Contains(t, html, "&#34;zoom&#34;:16")
}

func TestContactForm(t *testing.T) {
	require.NoError(t, i18n.Load())
	ctx := context.Background()

	t.Run("Without Turnstile", func(t *testing.T) {
		html := render(t, ctx, ContactForm(ContactFormProps{Action: "/api/contact", CSRFToken: "tok"}))

		assert.Contains(t, html, `action="/api/contact"`)
		assert.Contains(t, html, `<input type="hidden" name="_csrf" value="tok">`)
		for _, name := range []string{"name", "email", "phone", "message"} {
			assert.Contains(t, html, `name="`+name+`"`)
		}
		assert.Equal(t, 4, strings.Count(html, " required"))
		assert.Contains(t, html, `aria-live="polite"`)
		assert.Contains(t, html, "Enviar mensaje")
		assert.NotContains(t, html, "cf-turnstile")
	})

	t.Run("With Turnstile", func(t *testing.T) {
		html := render(t, ctx, ContactForm(ContactFormProps{Action: "/api/contact", TurnstileSiteKey: "site-key"}))
		assert.Contains(t, html, `<div class="cf-turnstile" data-sitekey="site-key"></div>`)
	})
}
