package services

import "defensa_juridica_web/models"

// Media keys of the home carousel images
const (
	SlideKeyFirm         = "slides/portada-home.webp"
	SlideKeyCommitment   = "slides/portada-home-sec.webp"
	SlideKeyCommitmentSm = "slides/slider-02-mobile.webp"
)

// DefaultSlides returns the home carousel in display order. Image keys are
// resolved through media, or served from the local media route when media is
// nil.
func DefaultSlides(media MediaStorage) []models.Slide {
	url := func(key string) string {
		if media == nil {
			return MediaPrefix + key
		}
		return media.PublicURL(key)
	}

	return []models.Slide{
		{
			ID:    1,
			Title: "URIBE FITZGERALD y Cia.",
			Image: models.SingleImage{Src: url(SlideKeyFirm)},
			CTA: models.CTA{
				Text: "Contáctanos",
				Href: "#contacto",
			},
		},
		{
			ID:          2,
			Title:       "Compromiso y Experiencia a tu Servicio",
			Description: "Profesionales unidos para defender tus derechos y acompañarte en cada etapa del proceso legal.",
			Image: models.ResponsiveImage{
				Desktop: url(SlideKeyCommitment),
				Mobile:  url(SlideKeyCommitmentSm),
			},
			CTA: models.CTA{
				Text: "Ver Servicios",
				Href: "#servicios",
			},
		},
	}
}

// DefaultOffice is the Puerto Montt office shown on the map
func DefaultOffice() models.Office {
	return models.Office{
		Name: "Estudio Jurídico",
		AddressLines: []string{
			"O'Higgins 167, Edificio Plaza",
			"Oficina 706, Puerto Montt",
		},
		Latitude:  -41.4717,
		Longitude: -72.9396,
		Zoom:      16,
	}
}
