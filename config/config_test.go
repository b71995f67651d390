package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("CONTACT_FROM_EMAIL", "")
	t.Setenv("CONTACT_TO_EMAIL", "")
	t.Setenv("SLIDER_AUTOPLAY_INTERVAL_MS", "")
	t.Setenv("SLIDER_KEYBOARD", "")
	t.Setenv("SLIDER_TOUCH", "")
	t.Setenv("SLIDER_PAUSE_ON_HOVER", "")
	t.Setenv("SLIDER_SWIPE_THRESHOLD", "")

	cfg := Load()
	assert.Equal(t, DefaultContactFrom, cfg.ContactFromEmail)
	assert.Equal(t, DefaultContactTo, cfg.ContactToEmail)
	assert.Equal(t, 8000, cfg.SliderAutoplayIntervalMs)
	assert.True(t, cfg.SliderKeyboard)
	assert.True(t, cfg.SliderTouch)
	assert.True(t, cfg.SliderPauseOnHover)
	assert.Equal(t, 50, cfg.SliderSwipeThreshold)
	assert.False(t, cfg.MailConfigured())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("CONTACT_TO_EMAIL", "buzon@example.com")
	t.Setenv("SLIDER_INFINITE", "off")
	t.Setenv("SLIDER_TRANSITION_MS", "250")
	t.Setenv("SLIDER_KEYBOARD", "false")
	t.Setenv("SLIDER_TOUCH", "no")
	t.Setenv("SLIDER_PAUSE_ON_HOVER", "0")
	t.Setenv("SLIDER_SWIPE_THRESHOLD", "80")

	cfg := Load()
	assert.True(t, cfg.MailConfigured())
	assert.Equal(t, "buzon@example.com", cfg.ContactToEmail)
	assert.False(t, cfg.SliderInfinite)
	assert.Equal(t, 250, cfg.SliderTransitionMs)
	assert.False(t, cfg.SliderKeyboard)
	assert.False(t, cfg.SliderTouch)
	assert.False(t, cfg.SliderPauseOnHover)
	assert.Equal(t, 80, cfg.SliderSwipeThreshold)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		expected bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"maybe", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, getEnvBool("TEST_BOOL", tt.fallback))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("TEST_INT", 1))

	t.Setenv("TEST_INT", "forty")
	assert.Equal(t, 1, getEnvInt("TEST_INT", 1))

	t.Setenv("TEST_INT", "-5")
	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))
}
