package services

import (
	"testing"

	"defensa_juridica_web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSlides(t *testing.T) {
	slides := DefaultSlides(nil)
	require.Len(t, slides, 2)

	ids := map[int]bool{}
	for _, s := range slides {
		assert.False(t, ids[s.ID], "slide ids are unique")
		ids[s.ID] = true
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.CTA.Text)
		assert.NotNil(t, s.Image)
	}

	first, ok := slides[0].Image.(models.SingleImage)
	require.True(t, ok)
	assert.Equal(t, "/media/"+SlideKeyFirm, first.Src)
	assert.Equal(t, "#contacto", slides[0].CTA.Href)
	assert.False(t, slides[0].HasDescription())

	second, ok := slides[1].Image.(models.ResponsiveImage)
	require.True(t, ok)
	assert.Equal(t, "/media/"+SlideKeyCommitment, second.Desktop)
	assert.Equal(t, "/media/"+SlideKeyCommitmentSm, second.Mobile)
	assert.Equal(t, second.Desktop, second.Fallback())
	assert.True(t, slides[1].HasDescription())
}

func TestDefaultSlidesUseStorageURLs(t *testing.T) {
	r2 := &R2Storage{bucket: "media", publicURL: "https://cdn.example.com"}
	slides := DefaultSlides(r2)
	assert.Equal(t, "https://cdn.example.com/"+SlideKeyFirm, slides[0].Image.Fallback())
}

func TestDefaultOffice(t *testing.T) {
	office := DefaultOffice()
	assert.Equal(t, 16, office.Zoom)
	assert.InDelta(t, -41.47, office.Latitude, 0.01)
	assert.InDelta(t, -72.94, office.Longitude, 0.01)
	assert.Len(t, office.AddressLines, 2)
}
