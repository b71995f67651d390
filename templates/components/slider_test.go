package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"defensa_juridica_web/models"
	"defensa_juridica_web/services/i18n"
	"defensa_juridica_web/services/slider"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlides() []models.Slide {
	return []models.Slide{
		{
			ID:    1,
			Title: "URIBE FITZGERALD y Cia.",
			Image: models.SingleImage{Src: "/media/slides/portada-home.webp"},
			CTA:   models.CTA{Text: "Contáctanos", Href: "#contacto"},
		},
		{
			ID:          2,
			Title:       "Compromiso y Experiencia a tu Servicio",
			Description: "Profesionales unidos",
			Image: models.ResponsiveImage{
				Desktop: "/media/slides/portada-home-sec.webp",
				Mobile:  "/media/slides/slider-02-mobile.webp",
			},
			CTA: models.CTA{Text: "Ver Servicios", Href: "#servicios"},
		},
	}
}

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func snapshot(index int, autoplaying bool) slider.Snapshot {
	return slider.Snapshot{
		State: slider.State{
			CurrentIndex: index,
			AutoPlaying:  autoplaying,
			Direction:    slider.DirectionDown,
		},
		Total:  2,
		Target: index,
	}
}

func TestBuildSliderView(t *testing.T) {
	require.NoError(t, i18n.Load())
	ctx := context.Background()

	t.Run("Idle", func(t *testing.T) {
		v := BuildSliderView(ctx, testSlides(), snapshot(1, false))
		assert.Equal(t, 1, v.Active)
		assert.Equal(t, -1, v.Entering)
		assert.Equal(t, "2 / 2", v.Counter)
		assert.Equal(t, "Slide 2 de 2: Compromiso y Experiencia a tu Servicio", v.Announcement)
		assert.Equal(t, "polite", v.LiveMode)
	})

	t.Run("Autoplay quiets the region but still announces", func(t *testing.T) {
		v := BuildSliderView(ctx, testSlides(), snapshot(0, true))
		assert.Equal(t, "off", v.LiveMode)
		assert.Equal(t, "Slide 1 de 2: URIBE FITZGERALD y Cia.", v.Announcement)
	})

	t.Run("Transition in flight", func(t *testing.T) {
		snap := snapshot(0, false)
		snap.Transitioning = true
		snap.Target = 1
		v := BuildSliderView(ctx, testSlides(), snap)
		assert.Equal(t, 0, v.Active)
		assert.Equal(t, 1, v.Entering)
		assert.True(t, v.Transitioning)
		assert.Equal(t, "1 / 2", v.Counter, "the counter follows the committed index")
	})

	t.Run("Localized", func(t *testing.T) {
		en := context.WithValue(ctx, i18n.LocaleContextKey, "en")
		v := BuildSliderView(en, testSlides(), snapshot(0, false))
		assert.Equal(t, "Slide 1 of 2: URIBE FITZGERALD y Cia.", v.Announcement)
	})

	t.Run("No slides", func(t *testing.T) {
		v := BuildSliderView(ctx, nil, slider.Snapshot{})
		assert.Empty(t, v.Counter)
		assert.Empty(t, v.Announcement)
		assert.Equal(t, 0, v.Total)
	})
}

func TestSliderRender(t *testing.T) {
	require.NoError(t, i18n.Load())
	ctx := context.Background()

	html := render(t, ctx, Slider(SliderProps{
		Slides:    testSlides(),
		State:     snapshot(0, false),
		Config:    slider.DefaultConfig(),
		SocketURL: "/ws/slider",
	}))

	t.Run("Container", func(t *testing.T) {
		assert.Contains(t, html, `data-socket="/ws/slider"`)
		assert.Contains(t, html, `data-total="2"`)
		assert.Contains(t, html, `data-transition-ms="600"`)
		assert.Contains(t, html, `aria-roledescription="carousel"`)
	})

	t.Run("Only the active slide is visible", func(t *testing.T) {
		assert.Contains(t, html, `class="slider__slide is-active" data-slide="0"`)
		assert.Contains(t, html, `class="slider__slide" data-slide="1"`)
		assert.Equal(t, 1, strings.Count(html, `aria-hidden="false"`))
	})

	t.Run("Image variants", func(t *testing.T) {
		assert.Contains(t, html, `background-image: url(&#39;/media/slides/portada-home.webp&#39;)`)
		assert.Contains(t, html, `<source media="(max-width: 767px)" srcset="/media/slides/slider-02-mobile.webp">`)
		assert.Contains(t, html, `<source media="(min-width: 768px)" srcset="/media/slides/portada-home-sec.webp">`)
		assert.Contains(t, html, `src="/media/slides/portada-home-sec.webp"`)
		assert.Equal(t, 1, strings.Count(html, "<picture"))
	})

	t.Run("Headings and description", func(t *testing.T) {
		assert.Contains(t, html, `<h1 class="slider__title">URIBE FITZGERALD y Cia.</h1>`)
		assert.Contains(t, html, `<h2 class="slider__title">Compromiso y Experiencia a tu Servicio</h2>`)
		assert.Equal(t, 1, strings.Count(html, "slider__description"))
	})

	t.Run("Controls", func(t *testing.T) {
		assert.Contains(t, html, `data-action="previous"`)
		assert.Contains(t, html, `data-action="next"`)
		assert.Equal(t, 2, strings.Count(html, `data-action="goto"`))
		assert.Equal(t, 1, strings.Count(html, `aria-current="true"`))
		assert.Contains(t, html, `aria-label="Ir al slide 2"`)
		assert.Contains(t, html, `data-action="toggle"`)
		assert.Contains(t, html, `<span data-counter>1 / 2</span>`)
	})

	t.Run("Announcer", func(t *testing.T) {
		assert.Contains(t, html, `aria-live="polite">Slide 1 de 2: URIBE FITZGERALD y Cia.</div>`)
	})
}

func TestSliderRenderTransition(t *testing.T) {
	require.NoError(t, i18n.Load())

	snap := snapshot(0, true)
	snap.Transitioning = true
	snap.Target = 1
	html := render(t, context.Background(), Slider(SliderProps{
		Slides: testSlides(),
		State:  snap,
		Config: slider.DefaultConfig(),
	}))

	assert.Contains(t, html, `class="slider__slide is-active is-leaving"`)
	assert.Contains(t, html, `class="slider__slide is-entering from-down"`)
	assert.Regexp(t, `<section id="inicio"[^>]*aria-live="off">`, html)
	assert.Contains(t, html, `data-announcer aria-atomic="true" aria-live="polite">Slide 1 de 2: URIBE FITZGERALD y Cia.</div>`)
	assert.Equal(t, 1, strings.Count(html, `aria-live="off"`))
}

func TestSliderRenderSingleSlide(t *testing.T) {
	require.NoError(t, i18n.Load())

	html := render(t, context.Background(), Slider(SliderProps{
		Slides: testSlides()[:1],
		State:  slider.Snapshot{Total: 1},
		Config: slider.DefaultConfig(),
	}))

	assert.NotContains(t, html, `data-action="next"`)
	assert.NotContains(t, html, `data-action="goto"`)
	assert.NotContains(t, html, `data-action="toggle"`)
	assert.Contains(t, html, "URIBE FITZGERALD y Cia.")
}

func TestSliderRenderWithoutAutoplay(t *testing.T) {
	require.NoError(t, i18n.Load())

	html := render(t, context.Background(), Slider(SliderProps{
		Slides: testSlides(),
		State:  snapshot(0, false),
		Config: slider.NewConfig(slider.WithAutoplay(false)),
	}))

	assert.NotContains(t, html, `data-action="toggle"`)
	assert.Contains(t, html, `data-action="next"`)
}

func TestSliderEscapesContent(t *testing.T) {
	require.NoError(t, i18n.Load())

	slides := []models.Slide{
		{Title: `<script>alert(1)</script>`, Image: models.SingleImage{Src: "x"}, CTA: models.CTA{Text: "a", Href: "#b"}},
	}
	html := render(t, context.Background(), Slider(SliderProps{Slides: slides, State: slider.Snapshot{Total: 1}}))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
