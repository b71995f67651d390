package components

import (
	"context"
	"io"

	"defensa_juridica_web/services/i18n"
	"defensa_juridica_web/templates/partials"

	"github.com/a-h/templ"
)

// ContactFormProps configures the contact form
type ContactFormProps struct {
	Action           string
	CSRFToken        string
	TurnstileSiteKey string // empty disables the widget
}

type formField struct {
	name      string
	inputType string
	auto      string
	maxLen    int
}

var contactFields = []formField{
	{name: "name", inputType: "text", auto: "name", maxLen: 200},
	{name: "email", inputType: "email", auto: "email", maxLen: 254},
	{name: "phone", inputType: "tel", auto: "tel", maxLen: 50},
}

// ContactForm renders the contact section. contact.js posts it with fetch
// and writes the JSON message into the status region.
func ContactForm(p ContactFormProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := partials.NewWriter(w)

		h.Raw(`<section id="contacto" class="contact" aria-labelledby="contacto-title">`)
		h.Raw(`<h2 id="contacto-title" class="section-title">`)
		h.Text(i18n.T(ctx, "contact.title"))
		h.Raw(`</h2>`)

		h.Raw(`<form class="contact__form" method="post" data-contact-form novalidate`)
		h.Attr("action", p.Action)
		h.Attr("data-sending", i18n.T(ctx, "contact.sending"))
		h.Raw(">")
		h.Raw(`<input type="hidden" name="_csrf"`)
		h.Attr("value", p.CSRFToken)
		h.Raw(">")

		for _, f := range contactFields {
			id := "contact-" + f.name
			h.Raw(`<div class="form-field"><label`)
			h.Attr("for", id)
			h.Raw(">")
			h.Text(i18n.T(ctx, "contact."+f.name))
			h.Raw(`</label><input required`)
			h.Attr("id", id)
			h.Attr("name", f.name)
			h.Attr("type", f.inputType)
			h.Attr("autocomplete", f.auto)
			h.IntAttr("maxlength", f.maxLen)
			h.Raw(`></div>`)
		}

		h.Raw(`<div class="form-field"><label for="contact-message">`)
		h.Text(i18n.T(ctx, "contact.message"))
		h.Raw(`</label><textarea id="contact-message" name="message" rows="5" maxlength="5000" required></textarea></div>`)

		if p.TurnstileSiteKey != "" {
			h.Raw(`<div class="cf-turnstile"`)
			h.Attr("data-sitekey", p.TurnstileSiteKey)
			h.Raw(`></div>`)
		}

		h.Raw(`<button type="submit" class="btn btn-primary">`)
		h.Text(i18n.T(ctx, "contact.submit"))
		h.Raw(`</button>`)
		h.Raw(`<p class="contact__status" data-contact-status role="status" aria-live="polite"></p>`)
		h.Raw(`</form></section>`)

		return h.Err()
	})
}
