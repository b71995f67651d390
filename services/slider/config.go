package slider

import "time"

const (
	DefaultAutoplayInterval   = 10 * time.Second
	DefaultTransitionDuration = 600 * time.Millisecond
	DefaultSwipeThreshold     = 50.0
)

// Config is fixed for the lifetime of a Controller
type Config struct {
	Autoplay           bool
	AutoplayInterval   time.Duration
	Infinite           bool // wrap around at both ends instead of clamping
	TransitionDuration time.Duration
	PauseOnHover       bool
	EnableKeyboard     bool
	EnableTouch        bool
	SwipeThreshold     float64 // minimum vertical displacement for a swipe
}

// DefaultConfig returns the settings used when no option overrides them
func DefaultConfig() Config {
	return Config{
		Autoplay:           true,
		AutoplayInterval:   DefaultAutoplayInterval,
		Infinite:           true,
		TransitionDuration: DefaultTransitionDuration,
		PauseOnHover:       true,
		EnableKeyboard:     true,
		EnableTouch:        true,
		SwipeThreshold:     DefaultSwipeThreshold,
	}
}

// Option overrides one field of the default Config
type Option func(*Config)

func WithAutoplay(enabled bool) Option {
	return func(c *Config) { c.Autoplay = enabled }
}

func WithAutoplayInterval(d time.Duration) Option {
	return func(c *Config) { c.AutoplayInterval = d }
}

func WithInfinite(enabled bool) Option {
	return func(c *Config) { c.Infinite = enabled }
}

func WithTransitionDuration(d time.Duration) Option {
	return func(c *Config) { c.TransitionDuration = d }
}

func WithPauseOnHover(enabled bool) Option {
	return func(c *Config) { c.PauseOnHover = enabled }
}

func WithKeyboard(enabled bool) Option {
	return func(c *Config) { c.EnableKeyboard = enabled }
}

func WithTouch(enabled bool) Option {
	return func(c *Config) { c.EnableTouch = enabled }
}

func WithSwipeThreshold(threshold float64) Option {
	return func(c *Config) { c.SwipeThreshold = threshold }
}

// NewConfig merges opts over DefaultConfig. Non-positive intervals and
// thresholds fall back to their defaults; a negative transition becomes zero.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.AutoplayInterval <= 0 {
		cfg.AutoplayInterval = DefaultAutoplayInterval
	}
	if cfg.TransitionDuration < 0 {
		cfg.TransitionDuration = 0
	}
	if cfg.SwipeThreshold <= 0 {
		cfg.SwipeThreshold = DefaultSwipeThreshold
	}
	return cfg
}
