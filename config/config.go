package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultFormEndpointURL is the Apps Script web app that records contact submissions.
const DefaultFormEndpointURL = "https://script.google.com/macros/s/AKfycbyZitYoipu3MBZ_FG15r3YxixJj8qZXWyIErJPeU6zZPlEabqHQDQ29gXW8NFPa59MN/exec"

type Config struct {
	ServerPort     string
	Environment    string
	AppURL         string
	SiteName       string
	AllowedOrigins []string
	// Form relay
	FormEndpointURL     string
	FormEndpointTimeout time.Duration // Zero means the outbound call has no client timeout
	ContactRateLimit    int           // Submissions per minute per IP
	// Email (Resend)
	ResendAPIKey    string
	EmailFrom       string
	EmailFromName   string
	EmailTestMode   bool // When true, emails are logged to console instead of sent
	LeadNotifyEmail string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		AppURL:              strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		SiteName:            getEnv("SITE_NAME", "Sarveen.io"),
		AllowedOrigins:      strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		FormEndpointURL:     getEnv("FORM_ENDPOINT_URL", DefaultFormEndpointURL),
		FormEndpointTimeout: getEnvDuration("FORM_ENDPOINT_TIMEOUT", 0),
		ContactRateLimit:    getEnvInt("CONTACT_RATE_LIMIT", 10),
		ResendAPIKey:        getEnv("RESEND_API_KEY", ""),
		EmailFrom:           getEnv("EMAIL_FROM", "hello@sarveen.io"),
		EmailFromName:       getEnv("EMAIL_FROM_NAME", "Sarveen.io"),
		EmailTestMode:       getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		LeadNotifyEmail:     getEnv("LEAD_NOTIFY_EMAIL", ""),
		TurnstileSiteKey:    getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey:  getEnv("TURNSTILE_SECRET_KEY", ""),
	}

	return cfg
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TurnstileEnabled reports whether contact submissions must pass a CAPTCHA
func (c *Config) TurnstileEnabled() bool {
	return c.TurnstileSecretKey != ""
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
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// getEnvDuration accepts Go duration strings ("15s") or a bare number of seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// ValidateFormEndpoint checks the relay target. In production the endpoint must
// be an absolute HTTPS URL because submissions carry personal contact details.
// Elsewhere a problem is only logged.
func ValidateFormEndpoint(endpoint string, environment string) error {
	var problem error
	switch {
	case !strings.HasPrefix(endpoint, "https://") && !strings.HasPrefix(endpoint, "http://"):
		problem = fmt.Errorf("FORM_ENDPOINT_URL must be an absolute URL (current: %q)", endpoint)
	case !strings.HasPrefix(endpoint, "https://"):
		problem = fmt.Errorf("FORM_ENDPOINT_URL must use HTTPS in production (current: %q)", endpoint)
	}

	if problem == nil {
		return nil
	}
	if environment == "production" {
		return problem
	}
	log.Printf("[WARNING] %v", problem)
	return nil
}
