package models

// CTA is the call-to-action button shown on a slide
type CTA struct {
	Text string
	Href string
}

// SlideImage is either a SingleImage or a ResponsiveImage. The variant is
// fixed when the slide is built.
type SlideImage interface {
	// Fallback is the image used when no viewport-specific source applies
	Fallback() string
	slideImage()
}

// SingleImage uses one reference for every viewport
type SingleImage struct {
	Src string
}

func (i SingleImage) Fallback() string { return i.Src }
func (SingleImage) slideImage()        {}

// ResponsiveImage carries separate desktop and mobile references
type ResponsiveImage struct {
	Desktop string
	Mobile  string
}

// Fallback returns the desktop image, which is the non-conditional source
func (i ResponsiveImage) Fallback() string { return i.Desktop }
func (ResponsiveImage) slideImage()        {}

// Slide is one entry of the home page carousel
type Slide struct {
	ID          int
	Title       string
	Description string // optional
	Image       SlideImage
	CTA         CTA
}

// HasDescription reports whether the slide renders a description paragraph
func (s Slide) HasDescription() bool {
	return s.Description != ""
}
