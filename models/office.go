package models

// Office is the firm location rendered by the map widget
type Office struct {
	Name         string
	AddressLines []string
	Latitude     float64
	Longitude    float64
	Zoom         int
}
