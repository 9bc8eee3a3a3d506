package services

import (
	"os"
	"path/filepath"
	"testing"

	"sarveen_landing_go/config"
	"sarveen_landing_go/models"
	"sarveen_landing_go/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTemplateDir points the email loader at dir for the duration of the test
func useTemplateDir(t *testing.T, dir string) {
	old := emailTemplateDir
	emailTemplateDir = dir
	t.Cleanup(func() { emailTemplateDir = old })
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	useTemplateDir(t, dir)

	os.WriteFile(filepath.Join(dir, "test_template.html"), []byte("<html><body>Hello {{.Name}}</body></html>"), 0644)
	os.WriteFile(filepath.Join(dir, "test_template.txt"), []byte("Hello {{.Name}}"), 0644)
	os.WriteFile(filepath.Join(dir, "test_template_es.html"), []byte("<html><body>Hola {{.Name}}</body></html>"), 0644)
	os.WriteFile(filepath.Join(dir, "test_template_es.txt"), []byte("Hola {{.Name}}"), 0644)

	tplData := LeadEmailData{Name: "John"}

	t.Run("Load Base Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "en", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hello John")
		assert.Contains(t, text, "Hello John")
	})

	t.Run("Load Localized Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "es", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hola John")
		assert.Contains(t, text, "Hola John")
	})

	t.Run("Fallback to Base when Localized Missing", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "fr", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hello John")
		assert.Contains(t, text, "Hello John")
	})

	t.Run("Template Not Found", func(t *testing.T) {
		_, _, err := loadTemplate("non_existent", "en", tplData)
		assert.Error(t, err)
	})

	t.Run("HTML Escaping", func(t *testing.T) {
		html, _, err := loadTemplate("test_template", "en", LeadEmailData{Name: "<b>x</b>"})
		assert.NoError(t, err)
		assert.NotContains(t, html, "<b>x</b>")
	})

	t.Run("Text Body Not Escaped", func(t *testing.T) {
		_, text, err := loadTemplate("test_template", "en", LeadEmailData{Name: "+1 Smith & Sons <x>"})
		assert.NoError(t, err)
		assert.Equal(t, "Hello +1 Smith & Sons <x>", text)
	})
}

func TestSendEmail_TestMode(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		HTMLBody: "Body",
	}

	assert.NoError(t, SendEmail(cfg, email))
}

func TestSendEmail_NoApiKey(t *testing.T) {
	cfg := &config.Config{EmailTestMode: false}
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		HTMLBody: "Body",
	}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY not configured")
}

func TestSendEmail_NoBody(t *testing.T) {
	cfg := &config.Config{EmailTestMode: false, ResendAPIKey: "key"}
	email := &Email{
		To:      []string{"test@example.com"},
		Subject: "Test",
	}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must have either HTMLBody or TextBody")
}

func TestBuildLeadConfirmationEmail(t *testing.T) {
	require.NoError(t, i18n.Load())
	useTemplateDir(t, filepath.Join("..", "templates", "emails"))

	cfg := &config.Config{SiteName: "Sarveen.io", AppURL: "https://sarveen.io"}
	sub := models.Submission{Name: "Ada", Phone: "+1234567890", Email: "ada@example.com", Business: "Smith & Sons"}

	t.Run("English", func(t *testing.T) {
		email := BuildLeadConfirmationEmail(cfg, sub, "en")
		assert.Equal(t, []string{"ada@example.com"}, email.To)
		assert.Contains(t, email.Subject, "Sarveen.io")
		assert.Contains(t, email.TextBody, "Thanks, Ada!")
		assert.Contains(t, email.TextBody, "+1234567890")
		assert.Contains(t, email.HTMLBody, "Smith &amp; Sons")
		assert.Contains(t, email.TextBody, "WhatsApp at +1234567890")
		assert.Contains(t, email.TextBody, "Smith & Sons")
		assert.NotContains(t, email.TextBody, "&#43;")
		assert.NotContains(t, email.TextBody, "&amp;")
	})

	t.Run("Spanish", func(t *testing.T) {
		email := BuildLeadConfirmationEmail(cfg, sub, "es")
		assert.Contains(t, email.TextBody, "¡Gracias, Ada!")
	})

	t.Run("FallbackWithoutTemplates", func(t *testing.T) {
		useTemplateDir(t, t.TempDir())
		email := BuildLeadConfirmationEmail(cfg, sub, "en")
		assert.Empty(t, email.HTMLBody)
		assert.Contains(t, email.TextBody, "Ada")
	})
}

func TestBuildLeadNotificationEmail(t *testing.T) {
	useTemplateDir(t, filepath.Join("..", "templates", "emails"))

	cfg := &config.Config{SiteName: "Sarveen.io", LeadNotifyEmail: "owner@sarveen.io"}
	email := BuildLeadNotificationEmail(cfg, models.Submission{Name: "Ada", Phone: "+1234567890", Business: "Smith & Sons"})

	assert.Equal(t, []string{"owner@sarveen.io"}, email.To)
	assert.Equal(t, "New lead: Ada", email.Subject)
	assert.Contains(t, email.TextBody, "WhatsApp: +1234567890")
	assert.Contains(t, email.TextBody, "Smith & Sons")
	assert.Contains(t, email.TextBody, "Email:    -")
	assert.Contains(t, email.HTMLBody, "Smith &amp; Sons")
}

func TestTruncate(t *testing.T) {
	s := "Hello World"
	assert.Equal(t, "Hello", truncate(s, 5))
	assert.Equal(t, "Hello World", truncate(s, 20))
}
