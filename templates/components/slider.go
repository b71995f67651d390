package components

import (
	"context"
	"io"
	"strconv"

	"defensa_juridica_web/models"
	"defensa_juridica_web/services/i18n"
	"defensa_juridica_web/services/slider"
	"defensa_juridica_web/templates/partials"

	"github.com/a-h/templ"
)

// SliderView is everything the carousel markup depends on, derived from a
// controller snapshot. The websocket sends the same view so the browser
// applies exactly what the server would render.
type SliderView struct {
	Active        int    `json:"active"`
	Entering      int    `json:"entering"` // -1 unless a transition is running
	Direction     string `json:"direction"`
	Transitioning bool   `json:"transitioning"`
	AutoPlaying   bool   `json:"autoplaying"`
	Total         int    `json:"total"`
	Counter       string `json:"counter"`
	Announcement  string `json:"announcement"`
	// LiveMode is the aria-live politeness of the carousel region, off
	// while autoplay rotates it. The announcer stays polite.
	LiveMode string `json:"live"`
}

// BuildSliderView derives the view of slides for snap
func BuildSliderView(ctx context.Context, slides []models.Slide, snap slider.Snapshot) SliderView {
	v := SliderView{
		Active:        snap.CurrentIndex,
		Entering:      -1,
		Direction:     string(snap.Direction),
		Transitioning: snap.Transitioning,
		AutoPlaying:   snap.AutoPlaying,
		Total:         len(slides),
		LiveMode:      "polite",
	}
	if snap.Transitioning && snap.Target != snap.CurrentIndex {
		v.Entering = snap.Target
	}
	if snap.AutoPlaying {
		v.LiveMode = "off"
	}
	if len(slides) == 0 || snap.CurrentIndex < 0 || snap.CurrentIndex >= len(slides) {
		return v
	}

	v.Counter = strconv.Itoa(snap.CurrentIndex+1) + " / " + strconv.Itoa(len(slides))
	v.Announcement = i18n.T(ctx, "slider.announce", map[string]interface{}{
		"n":     snap.CurrentIndex + 1,
		"total": len(slides),
		"title": slides[snap.CurrentIndex].Title,
	})
	return v
}

// SliderProps configures the carousel markup
type SliderProps struct {
	Slides    []models.Slide
	State     slider.Snapshot
	Config    slider.Config
	SocketURL string
}

// Slider renders every slide stacked with only the active one visible, so
// slide changes cross-fade. Dots, arrows and the counter mirror the state.
func Slider(p SliderProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		view := BuildSliderView(ctx, p.Slides, p.State)
		h := partials.NewWriter(w)

		h.Raw(`<section id="inicio" class="slider"`)
		h.Attr("data-slider", "")
		h.Attr("data-socket", p.SocketURL)
		h.IntAttr("data-total", view.Total)
		h.IntAttr("data-index", view.Active)
		h.IntAttr("data-transition-ms", int(p.Config.TransitionDuration.Milliseconds()))
		h.IntAttr("data-swipe-threshold", int(p.Config.SwipeThreshold))
		h.BoolAttr("data-keyboard", p.Config.EnableKeyboard)
		h.BoolAttr("data-touch", p.Config.EnableTouch)
		h.BoolAttr("data-hover", p.Config.PauseOnHover)
		h.Attr("aria-roledescription", "carousel")
		h.Attr("aria-label", i18n.T(ctx, "slider.label"))
		h.Attr("aria-live", view.LiveMode)
		h.Raw(">")

		h.Raw(`<div class="slider__track">`)
		for i, s := range p.Slides {
			renderSlide(ctx, h, s, i, view)
		}
		h.Raw(`</div>`)

		if view.Total > 1 {
			renderArrows(ctx, h)
			renderDots(ctx, h, p.Slides, view)
			h.Raw(`<div class="slider__counter" aria-hidden="true"><span data-counter>`)
			h.Text(view.Counter)
			h.Raw(`</span></div>`)
			if p.Config.Autoplay {
				renderToggle(ctx, h, view)
			}
		}

		h.Raw(`<div class="sr-only" data-announcer aria-atomic="true" aria-live="polite">`)
		h.Text(view.Announcement)
		h.Raw(`</div></section>`)

		return h.Err()
	})
}

func slideClass(i int, view SliderView) string {
	switch {
	case i == view.Entering:
		return partials.Classes("slider__slide", "is-entering", "from-"+view.Direction)
	case i == view.Active && view.Entering >= 0:
		return partials.Classes("slider__slide", "is-active", "is-leaving")
	case i == view.Active:
		return partials.Classes("slider__slide", "is-active")
	}
	return "slider__slide"
}

func renderSlide(ctx context.Context, h *partials.Writer, s models.Slide, i int, view SliderView) {
	active := i == view.Active

	h.Raw(`<article`)
	h.Attr("class", slideClass(i, view))
	h.IntAttr("data-slide", i)
	h.Attr("aria-roledescription", "slide")
	h.Attr("aria-label", strconv.Itoa(i+1)+" / "+strconv.Itoa(view.Total))
	h.BoolAttr("aria-hidden", !active)
	h.Raw(">")

	renderSlideImage(h, s, i == 0)

	h.Raw(`<div class="slider__overlay"></div><div class="slider__content">`)
	// The first slide carries the page heading
	if i == 0 {
		h.Raw(`<h1 class="slider__title">`)
		h.Text(s.Title)
		h.Raw(`</h1>`)
	} else {
		h.Raw(`<h2 class="slider__title">`)
		h.Text(s.Title)
		h.Raw(`</h2>`)
	}
	if s.HasDescription() {
		h.Raw(`<p class="slider__description">`)
		h.Text(s.Description)
		h.Raw(`</p>`)
	}
	h.Raw(`<a class="btn btn-primary slider__cta"`)
	h.Attr("href", s.CTA.Href)
	if !active {
		h.Attr("tabindex", "-1")
	}
	h.Raw(">")
	h.Text(s.CTA.Text)
	h.Raw(`</a></div></article>`)
}

// renderSlideImage picks the markup for the image variant. Responsive pairs
// get viewport-conditional sources with the desktop image as fallback.
func renderSlideImage(h *partials.Writer, s models.Slide, eager bool) {
	loading := "lazy"
	if eager {
		loading = "eager"
	}

	switch img := s.Image.(type) {
	case models.ResponsiveImage:
		h.Raw(`<picture class="slider__picture">`)
		h.Raw(`<source media="(max-width: 767px)"`)
		h.Attr("srcset", img.Mobile)
		h.Raw(`><source media="(min-width: 768px)"`)
		h.Attr("srcset", img.Desktop)
		h.Raw(`><img class="slider__img"`)
		h.Attr("src", img.Fallback())
		h.Attr("alt", s.Title)
		h.Attr("loading", loading)
		h.Raw(` decoding="async"></picture>`)
	case models.SingleImage:
		h.Raw(`<div class="slider__bg" role="img"`)
		h.Attr("aria-label", s.Title)
		h.Attr("style", "background-image: "+partials.CSSURL(img.Src))
		h.Raw(`></div>`)
	}
}

const (
	iconChevronUp   = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="m18 15-6-6-6 6"/></svg>`
	iconChevronDown = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="m6 9 6 6 6-6"/></svg>`
	iconPause       = `<svg class="icon-pause" width="16" height="16" viewBox="0 0 24 24" fill="currentColor" aria-hidden="true"><rect x="6" y="4" width="4" height="16"/><rect x="14" y="4" width="4" height="16"/></svg>`
	iconPlay        = `<svg class="icon-play" width="16" height="16" viewBox="0 0 24 24" fill="currentColor" aria-hidden="true"><path d="M7 4v16l13-8z"/></svg>`
)

func renderArrows(ctx context.Context, h *partials.Writer) {
	h.Raw(`<button type="button" class="slider__arrow slider__arrow--prev" data-action="previous"`)
	h.Attr("aria-label", i18n.T(ctx, "slider.previous"))
	h.Raw(">" + iconChevronUp + "</button>")

	h.Raw(`<button type="button" class="slider__arrow slider__arrow--next" data-action="next"`)
	h.Attr("aria-label", i18n.T(ctx, "slider.next"))
	h.Raw(">" + iconChevronDown + "</button>")
}

func renderDots(ctx context.Context, h *partials.Writer, slides []models.Slide, view SliderView) {
	h.Raw(`<nav class="slider__dots"`)
	h.Attr("aria-label", i18n.T(ctx, "slider.label"))
	h.Raw(">")
	for i := range slides {
		active := i == view.Active
		class := "slider__dot"
		if active {
			class = partials.Classes(class, "is-active")
		}
		h.Raw(`<button type="button" data-action="goto"`)
		h.Attr("class", class)
		h.IntAttr("data-index", i)
		h.Attr("aria-label", i18n.T(ctx, "slider.goto", map[string]interface{}{"n": i + 1}))
		if active {
			h.Attr("aria-current", "true")
		}
		h.Raw(`></button>`)
	}
	h.Raw(`</nav>`)
}

func renderToggle(ctx context.Context, h *partials.Writer, view SliderView) {
	label := i18n.T(ctx, "slider.play")
	if view.AutoPlaying {
		label = i18n.T(ctx, "slider.pause")
	}
	h.Raw(`<button type="button" class="slider__toggle" data-action="toggle"`)
	h.BoolAttr("aria-pressed", !view.AutoPlaying)
	h.Attr("aria-label", label)
	h.Attr("data-label-pause", i18n.T(ctx, "slider.pause"))
	h.Attr("data-label-play", i18n.T(ctx, "slider.play"))
	h.Raw(">" + iconPause + iconPlay + "</button>")
}
