package handlers

import (
	"net/http"
	"time"

	"sarveen_landing_go/config"
	"sarveen_landing_go/middleware"
	"sarveen_landing_go/models"
	"sarveen_landing_go/services"
	"sarveen_landing_go/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// LandingHandler renders the landing page with an empty contact form
func LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	form := models.NewContactFormState(middleware.GetCSRFToken(c), cfg.TurnstileSiteKey)
	return render(c, http.StatusOK, pages.Landing(newLandingViewModel(c, cfg, form)))
}

func newLandingViewModel(c echo.Context, cfg *config.Config, form models.ContactFormState) pages.LandingViewModel {
	return pages.LandingViewModel{
		SEO:      GetSEO(cfg, middleware.GetLocale(c)),
		SiteName: cfg.SiteName,
		Year:     time.Now().Year(),
		Benefits: services.LandingBenefits(),
		FAQs:     services.LandingFAQs(),
		Form:     form,
	}
}

// render writes component as an HTML response with the given status
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}
