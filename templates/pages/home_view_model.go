package pages

import (
	"defensa_juridica_web/models"
	"defensa_juridica_web/services/slider"
)

// HomeViewModel holds the data for the home page
type HomeViewModel struct {
	SEO              *models.SEO
	Slides           []models.Slide
	SliderState      slider.Snapshot
	SliderConfig     slider.Config
	SliderSocketURL  string
	Office           models.Office
	CSRFToken        string
	TurnstileSiteKey string
}

// Service is one practice area listed on the home page
type Service struct {
	Key  string // i18n key under services.
	Icon string
}

// Services lists the practice areas in display order
var Services = []Service{
	{Key: "civil", Icon: "scale"},
	{Key: "family", Icon: "users"},
	{Key: "labor", Icon: "briefcase"},
	{Key: "criminal", Icon: "shield"},
}
