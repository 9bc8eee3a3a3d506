package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sarveen_landing_go/config"
	"sarveen_landing_go/handlers"
	"sarveen_landing_go/middleware"
	"sarveen_landing_go/services"
	"sarveen_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := config.ValidateFormEndpoint(cfg.FormEndpointURL, cfg.Environment); err != nil {
		log.Fatalf("[CRITICAL] %v", err)
	}

	// Load translations
	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// Cache-busting hashes for CSS, JS and the favicon
	middleware.InitAssetVersions("static")

	services.InitAbuseMonitor(cfg)
	relay := services.NewFormRelay(cfg.FormEndpointURL, cfg.FormEndpointTimeout)
	services.Relay = relay
	log.Printf("Forwarding contact submissions to %s", relay.Endpoint())

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(echomiddleware.Gzip())
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSRF(cfg))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	// Public routes
	e.GET("/", handlers.LandingHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/healthz", handlers.HealthHandler)

	// Contact submissions share one per-IP budget across the form and the API
	contactLimiter := middleware.NewContactRateLimiter(cfg.ContactRateLimit)
	e.POST("/contact", handlers.ContactSubmitHandler, contactLimiter.Middleware())
	e.POST("/api/contact", handlers.ContactAPIHandler, contactLimiter.Middleware())

	// Start server
	go func() {
		log.Printf("Server starting on port %s (%s)", cfg.ServerPort, cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	logAbuseAlerts(services.Monitor.GetRecentAlerts())
}

// logAbuseAlerts summarises the alerts raised during this run
func logAbuseAlerts(alerts []services.AbuseAlert) {
	if len(alerts) == 0 {
		return
	}
	log.Printf("[INFO] %d contact form abuse alert(s) raised since start", len(alerts))
	for _, a := range alerts {
		log.Printf("[INFO]   %s %s: %d rejections (last: %s)", a.Timestamp.Format(time.RFC3339), a.IP, a.Count, a.Reason)
	}
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
