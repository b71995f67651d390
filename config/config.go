package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultContactFrom is the sender identity used when CONTACT_FROM_EMAIL is not set
	DefaultContactFrom = "noreply@defensajuridicasur.cl"
	// DefaultContactTo is the mailbox that receives contact form submissions
	DefaultContactTo = "juridicasurdefensa@gmail.com"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	MediaDir    string
	// Mail (Resend)
	ResendAPIKey     string
	ContactFromEmail string
	ContactFromName  string
	ContactToEmail   string
	EmailTestMode    bool // When true, contact emails are logged to console instead of sent
	// Contact archive
	ContactRetentionDays int
	// Other
	AllowedOrigins   []string
	AppURL           string
	TursoDatabaseURL string
	TursoAuthToken   string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 Storage (slide media)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	// Home slider
	SliderAutoplay           bool
	SliderAutoplayIntervalMs int
	SliderInfinite           bool
	SliderTransitionMs       int
	SliderKeyboard           bool
	SliderTouch              bool
	SliderPauseOnHover       bool
	SliderSwipeThreshold     int // pixels of vertical travel for a swipe
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:               getEnv("SERVER_PORT", "8080"),
		DBPath:                   getEnv("DB_PATH", "db/site.db"),
		Environment:              getEnv("ENVIRONMENT", "development"),
		MediaDir:                 getEnv("MEDIA_DIR", "static/media"),
		ResendAPIKey:             os.Getenv("RESEND_API_KEY"),
		ContactFromEmail:         getEnv("CONTACT_FROM_EMAIL", DefaultContactFrom),
		ContactFromName:          getEnv("CONTACT_FROM_NAME", "Defensa Jurídica Sur"),
		ContactToEmail:           getEnv("CONTACT_TO_EMAIL", DefaultContactTo),
		EmailTestMode:            getEnvBool("EMAIL_TEST_MODE", false),
		ContactRetentionDays:     getEnvInt("CONTACT_RETENTION_DAYS", 180),
		AllowedOrigins:           strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:                   getEnv("APP_URL", "https://defensajuridicasur.cl"),
		TursoDatabaseURL:         getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:           os.Getenv("TURSO_AUTH_TOKEN"),
		TurnstileSiteKey:         getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey:       os.Getenv("TURNSTILE_SECRET_KEY"),
		R2AccountID:              getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:            getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:        os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:             getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:              getEnv("R2_PUBLIC_URL", ""),
		SliderAutoplay:           getEnvBool("SLIDER_AUTOPLAY", true),
		SliderAutoplayIntervalMs: getEnvInt("SLIDER_AUTOPLAY_INTERVAL_MS", 8000),
		SliderInfinite:           getEnvBool("SLIDER_INFINITE", true),
		SliderTransitionMs:       getEnvInt("SLIDER_TRANSITION_MS", 600),
		SliderKeyboard:           getEnvBool("SLIDER_KEYBOARD", true),
		SliderTouch:              getEnvBool("SLIDER_TOUCH", true),
		SliderPauseOnHover:       getEnvBool("SLIDER_PAUSE_ON_HOVER", true),
		SliderSwipeThreshold:     getEnvInt("SLIDER_SWIPE_THRESHOLD", 50),
	}
}

// MailConfigured reports whether the mail provider credential is present
func (c *Config) MailConfigured() bool {
	return strings.TrimSpace(c.ResendAPIKey) != ""
}

// IsProduction reports whether the site runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		log.Printf("[WARNING] Invalid integer for %s (%q), using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
