package middleware

import (
	"html"
	"net/http"
	"strings"
	"sync"
	"time"

	"sarveen_landing_go/services"
	"sarveen_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc returns the key requests are counted under (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is returned when the limit is exceeded
	Message string
	// MessageKey, when set, is translated into the request locale instead of Message
	MessageKey string
	// HTMXTarget is the element HTMX requests retarget the limit message into
	HTMXTarget string
	// OnLimit, when set, is called for every rejected request
	OnLimit func(c echo.Context)
}

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed-window, per-key rate limiter
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.Mutex
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
	}

	go rl.cleanup()

	return rl
}

// Allow records a request for key and reports whether it is within the limit
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.store[key]
	if !exists || now.After(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{
			count:     1,
			expiresAt: now.Add(rl.config.Window),
		}
		return true
	}

	if entry.count >= rl.config.Requests {
		return false
	}

	entry.count++
	return true
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rl.Allow(rl.config.KeyFunc(c)) {
				return next(c)
			}

			if rl.config.OnLimit != nil {
				rl.config.OnLimit(c)
			}

			if strings.HasPrefix(c.Path(), "/api/") {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"success": false,
					"error":   "rate_limited",
				})
			}

			message := rl.message(c)
			if c.Request().Header.Get("HX-Request") == "true" {
				if rl.config.HTMXTarget != "" {
					c.Response().Header().Set("HX-Retarget", rl.config.HTMXTarget)
					c.Response().Header().Set("HX-Reswap", "innerHTML")
				}
				return c.HTML(http.StatusTooManyRequests, `<div class="form-alert form-alert--error" role="alert">`+html.EscapeString(message)+`</div>`)
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, message)
		}
	}
}

func (rl *RateLimiter) message(c echo.Context) string {
	if rl.config.MessageKey != "" {
		return i18n.T(c.Request().Context(), rl.config.MessageKey)
	}
	return rl.config.Message
}

// cleanup removes expired entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, entry := range rl.store {
			if now.After(entry.expiresAt) {
				delete(rl.store, key)
			}
		}
		rl.mu.Unlock()
	}
}

// NewContactRateLimiter limits contact submissions to perMinute per IP
func NewContactRateLimiter(perMinute int) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Requests:   perMinute,
		Window:     1 * time.Minute,
		Message:    "Too many form submissions. Please wait before trying again.",
		MessageKey: "contact.error.rate_limited",
		HTMXTarget: ContactStatusTarget,
		OnLimit: func(c echo.Context) {
			services.Monitor.TrackRejected(c.RealIP(), services.RejectRateLimited)
		},
	})
}
