package handlers

import (
	"errors"
	"log"
	"net/http"

	"sarveen_landing_go/config"
	"sarveen_landing_go/middleware"
	"sarveen_landing_go/models"
	"sarveen_landing_go/services"
	"sarveen_landing_go/templates/pages"
	"sarveen_landing_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// contactRequest is the body accepted by both contact endpoints
type contactRequest struct {
	models.Submission
	TurnstileToken string `json:"cf-turnstile-response" form:"cf-turnstile-response"`
}

// contactResult is the outcome of one pass through the guards and the relay
type contactResult struct {
	Submission models.Submission
	Problem    models.FormProblem
	Invalid    []string
}

func (r contactResult) ok() bool {
	return r.Problem == models.ProblemNone
}

// processContact binds, verifies, sanitizes, validates and forwards a submission.
// Confirmation emails are queued only after the endpoint accepted it.
func processContact(c echo.Context, cfg *config.Config) contactResult {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		log.Printf("[WARNING] Contact submission could not be read: %v", err)
		return contactResult{Submission: services.SanitizeSubmission(parsedFields(c)), Problem: models.ProblemInvalid}
	}
	sub := services.SanitizeSubmission(req.Submission)
	ctx := c.Request().Context()

	if cfg.TurnstileEnabled() {
		if ok, err := services.VerifyTurnstileToken(ctx, req.TurnstileToken, cfg.TurnstileSecretKey, c.RealIP()); !ok {
			log.Printf("[WARNING] Turnstile verification failed for %s: %v", c.RealIP(), err)
			services.Monitor.TrackRejected(c.RealIP(), services.RejectCaptcha)
			return contactResult{Submission: sub, Problem: models.ProblemCaptcha}
		}
	}

	if err := services.ValidateSubmission(sub); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return contactResult{Submission: sub, Problem: models.ProblemInvalid, Invalid: vErr.Fields}
		}
		return contactResult{Submission: sub, Problem: models.ProblemInvalid}
	}

	if err := services.ForwardSubmission(ctx, services.Relay, sub); err != nil {
		return contactResult{Submission: sub, Problem: models.ProblemFailed}
	}

	services.SendLeadEmails(cfg, sub, middleware.GetLocale(c))
	return contactResult{Submission: sub}
}

// parsedFields returns whatever form fields were decoded before binding failed,
// so the visitor does not lose what they typed. JSON bodies yield nothing.
func parsedFields(c echo.Context) models.Submission {
	return models.Submission{
		Name:     c.FormValue(models.FieldName),
		Phone:    c.FormValue(models.FieldPhone),
		Email:    c.FormValue(models.FieldEmail),
		Business: c.FormValue(models.FieldBusiness),
	}
}

// problemStatus maps a failed submission to the status of non-HTMX responses
func problemStatus(problem models.FormProblem) int {
	switch problem {
	case models.ProblemNone:
		return http.StatusOK
	case models.ProblemInvalid:
		return http.StatusUnprocessableEntity
	case models.ProblemCaptcha:
		return http.StatusForbidden
	case models.ProblemRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}

// ContactSubmitHandler handles the contact form. HTMX requests get the form
// partial back with status 200 so it is always swapped in; plain form posts
// get the whole page.
func ContactSubmitHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	result := processContact(c, cfg)

	form := models.NewContactFormState(middleware.GetCSRFToken(c), cfg.TurnstileSiteKey)
	form.Submission = result.Submission
	if result.ok() {
		form = form.Succeeded(result.Submission.Email != "")
	} else {
		form = form.Failed(result.Problem, result.Invalid...)
	}

	if c.Request().Header.Get("HX-Request") == "true" {
		return render(c, http.StatusOK, partials.ContactForm(form))
	}

	return render(c, problemStatus(result.Problem), pages.Landing(newLandingViewModel(c, cfg, form)))
}

// ContactAPIResponse mirrors the answer of the form endpoint
type ContactAPIResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// ContactAPIHandler accepts a submission as JSON or form data from non-browser callers
func ContactAPIHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	result := processContact(c, cfg)

	if result.ok() {
		return c.JSON(http.StatusOK, ContactAPIResponse{Success: true})
	}

	return c.JSON(problemStatus(result.Problem), ContactAPIResponse{
		Error:  string(result.Problem),
		Fields: result.Invalid,
	})
}
