package services

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"sarveen_landing_go/config"
	"sarveen_landing_go/models"
	"sarveen_landing_go/services/i18n"

	"github.com/resend/resend-go/v2"
)

// emailTemplateDir is relative to the working directory of the server
var emailTemplateDir = "templates/emails"

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// buildEmailWithFallback loads templateName in lang, falling back to the base template
func buildEmailWithFallback(templateName string, lang string, tmplData interface{}, toEmail string) *Email {
	htmlBody, textBody, err := loadTemplate(templateName, lang, tmplData)
	if err != nil {
		log.Printf("[WARNING] Error loading %s email template for lang %s: %v", templateName, lang, err)
	}

	// Try default language "en"
	if htmlBody == "" && textBody == "" && lang != "en" {
		htmlBody, textBody, err = loadTemplate(templateName, "en", tmplData)
		if err != nil {
			log.Printf("[WARNING] Error loading default 'en' template for %s: %v", templateName, err)
		}
	}

	return &Email{
		To: []string{toEmail},
		// Subject is set by caller
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
}

// loadTemplate loads templateName + "_" + lang + ".html/.txt", falling back to
// templateName + ".html/.txt" (the English base). Only the HTML body is escaped.
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	loadAndExec := func(ext string) (string, error) {
		// Try localized first
		path := filepath.Join(emailTemplateDir, fmt.Sprintf("%s_%s%s", templateName, lang, ext))
		content, err := os.ReadFile(path)
		if err != nil {
			path = filepath.Join(emailTemplateDir, templateName+ext)
			content, err = os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("failed to read template %s: %w", path, err)
			}
		}

		var tmpl interface {
			Execute(w io.Writer, data interface{}) error
		}
		if ext == ".html" {
			tmpl, err = htmltemplate.New(filepath.Base(path)).Parse(string(content))
		} else {
			tmpl, err = texttemplate.New(filepath.Base(path)).Parse(string(content))
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse template %s: %w", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to execute template %s: %w", path, err)
		}
		return buf.String(), nil
	}

	htmlContent, err := loadAndExec(".html")
	if err != nil {
		return "", "", err
	}

	textContent, err := loadAndExec(".txt")
	if err != nil {
		return "", "", err
	}

	return htmlContent, textContent, nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}

	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("[INFO] Email sent via Resend (ID: %s) to %d recipient(s)", sent.Id, len(email.To))
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (test mode, not sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// SendEmailAsync sends an email in a goroutine so handlers never wait on the email API
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("[ERROR] Error sending async email: %v", err)
		}
	}(cfg, emailCopy)
}

// LeadEmailData is the data for the lead confirmation and notification templates
type LeadEmailData struct {
	SiteName string
	Name     string
	Phone    string
	Email    string
	Business string
	AppURL   string
}

func newLeadEmailData(cfg *config.Config, sub models.Submission) LeadEmailData {
	return LeadEmailData{
		SiteName: cfg.SiteName,
		Name:     sub.Name,
		Phone:    sub.Phone,
		Email:    sub.Email,
		Business: sub.Business,
		AppURL:   cfg.AppURL,
	}
}

// BuildLeadConfirmationEmail creates the email thanking a visitor for booking a call
func BuildLeadConfirmationEmail(cfg *config.Config, sub models.Submission, lang string) *Email {
	data := newLeadEmailData(cfg, sub)
	email := buildEmailWithFallback("lead_confirmation", lang, data, sub.Email)
	email.Subject = i18n.Translate(lang, "email.confirmation.subject", map[string]interface{}{"site": cfg.SiteName})

	if email.HTMLBody == "" && email.TextBody == "" {
		email.TextBody = i18n.Translate(lang, "email.confirmation.fallback", map[string]interface{}{"name": sub.Name})
	}
	return email
}

// BuildLeadNotificationEmail creates the email telling the business owner about a new lead
func BuildLeadNotificationEmail(cfg *config.Config, sub models.Submission) *Email {
	data := newLeadEmailData(cfg, sub)
	email := buildEmailWithFallback("lead_notification", "en", data, cfg.LeadNotifyEmail)
	email.Subject = fmt.Sprintf("New lead: %s", sub.Name)

	if email.HTMLBody == "" && email.TextBody == "" {
		email.TextBody = fmt.Sprintf("Name: %s\nPhone: %s\nEmail: %s\nBusiness: %s\n", sub.Name, sub.Phone, sub.Email, sub.Business)
	}
	return email
}

// SendLeadEmails queues the visitor confirmation (when an email was given) and
// the owner notification (when configured). Failures are only logged.
func SendLeadEmails(cfg *config.Config, sub models.Submission, lang string) {
	if sub.Email != "" {
		SendEmailAsync(cfg, BuildLeadConfirmationEmail(cfg, sub, lang))
	}
	if cfg.LeadNotifyEmail != "" {
		SendEmailAsync(cfg, BuildLeadNotificationEmail(cfg, sub))
	}
}
