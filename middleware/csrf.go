package middleware

import (
	"log"
	"net/http"
	"strings"

	"sarveen_landing_go/config"
	"sarveen_landing_go/models"
	"sarveen_landing_go/templates/partials"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// CSRFFormField is the hidden input carrying the token in HTML forms
const CSRFFormField = "_csrf"

// CSRF returns echo's CSRF middleware configured for the site's forms.
// The JSON API is exempt; it is rate limited and carries no cookies.
func CSRF(cfg *config.Config) echo.MiddlewareFunc {
	return echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		TokenLookup:    "form:" + CSRFFormField + ",header:X-CSRF-Token",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   cfg.IsProduction(),
		ErrorHandler:   csrfErrorHandler,
	})
}

// ContactStatusTarget is the element form-level messages are swapped into
const ContactStatusTarget = "#contact-status"

// csrfErrorHandler answers HTMX form posts with the generic failure message,
// swapped into the form's status region. Other requests keep echo's 403.
func csrfErrorHandler(err error, c echo.Context) error {
	if c.Request().Header.Get("HX-Request") != "true" {
		return err
	}
	log.Printf("[WARNING] CSRF check failed for %s %s from %s: %v", c.Request().Method, c.Request().URL.Path, c.RealIP(), err)

	state := models.ContactFormState{}.Failed(models.ProblemFailed)
	c.Response().Header().Set("HX-Retarget", ContactStatusTarget)
	c.Response().Header().Set("HX-Reswap", "innerHTML")
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return partials.ContactStatus(state).Render(c.Request().Context(), c.Response().Writer)
}

// GetCSRFToken retrieves the CSRF token from the Echo context
// This token should be included in forms and AJAX requests
func GetCSRFToken(c echo.Context) string {
	token := c.Get("csrf")
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}
