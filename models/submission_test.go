package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionValues(t *testing.T) {
	s := Submission{Name: "Ada Lovelace", Phone: "+1234567890", Business: "Smith & Sons"}
	v := s.Values()

	assert.Equal(t, "Ada Lovelace", v.Get(FieldName))
	assert.Equal(t, "+1234567890", v.Get(FieldPhone))
	assert.Equal(t, "", v.Get(FieldEmail))
	assert.True(t, v.Has(FieldEmail))
	assert.Equal(t, "Smith & Sons", v.Get(FieldBusiness))
	assert.Equal(t, "business=Smith+%26+Sons&email=&name=Ada+Lovelace&phone=%2B1234567890", v.Encode())
}

func TestSubmissionMissingRequired(t *testing.T) {
	assert.Equal(t, []string{FieldName, FieldPhone}, Submission{}.MissingRequired())
	assert.Equal(t, []string{FieldPhone}, Submission{Name: "Ada"}.MissingRequired())
	assert.Equal(t, []string{FieldName}, Submission{Phone: "123", Email: "a@b.co"}.MissingRequired())
	assert.Empty(t, Submission{Name: "Ada", Phone: "123"}.MissingRequired())
}

func TestContactFormStateTransitions(t *testing.T) {
	filled := Submission{Name: "Ada", Phone: "123", Email: "ada@example.com"}

	idle := NewContactFormState("csrf-token", "site-key")
	assert.Equal(t, StatusIdle, idle.Status)
	assert.True(t, idle.Submission.IsBlank())
	assert.False(t, idle.IsSubmitting())

	idle.Submission = filled

	t.Run("Submitting", func(t *testing.T) {
		s := idle
		s.Status = StatusSubmitting
		assert.True(t, s.IsSubmitting())
		assert.Equal(t, filled, s.Submission)
	})

	t.Run("SucceededClearsFields", func(t *testing.T) {
		s := idle.Succeeded(true)
		assert.Equal(t, StatusSuccess, s.Status)
		assert.True(t, s.Submission.IsBlank())
		assert.True(t, s.ConfirmEmail)
		assert.False(t, s.IsSubmitting())
		assert.Equal(t, "csrf-token", s.CSRFToken)
	})

	t.Run("FailedKeepsFields", func(t *testing.T) {
		s := idle.Failed(ProblemFailed)
		assert.Equal(t, StatusError, s.Status)
		assert.Equal(t, filled, s.Submission)
		assert.False(t, s.IsSubmitting())
		assert.Equal(t, "contact.error.failed", s.ErrorKey())
	})

	t.Run("InvalidFields", func(t *testing.T) {
		s := idle.Failed(ProblemInvalid, FieldPhone)
		assert.True(t, s.HasError(FieldPhone))
		assert.False(t, s.HasError(FieldName))
		assert.Equal(t, "contact.error.invalid", s.ErrorKey())
	})
}

func TestErrorKey(t *testing.T) {
	tests := map[FormProblem]string{
		ProblemNone:        "contact.error.failed",
		ProblemFailed:      "contact.error.failed",
		ProblemInvalid:     "contact.error.invalid",
		ProblemCaptcha:     "contact.error.captcha",
		ProblemRateLimited: "contact.error.rate_limited",
	}
	for problem, key := range tests {
		assert.Equal(t, key, ContactFormState{Status: StatusError, Problem: problem}.ErrorKey(), string(problem))
	}
}

func TestSEOFallbacks(t *testing.T) {
	seo := DefaultSEO("Title", "Description")
	assert.Equal(t, "Title", seo.GetOGTitle())
	assert.Equal(t, "Description", seo.GetOGDesc())
	assert.Equal(t, "index, follow", seo.Robots())

	seo.OGTitle = "Share title"
	seo.WithNoIndex().WithCanonical("https://sarveen.io/")
	assert.Equal(t, "Share title", seo.GetOGTitle())
	assert.Equal(t, "noindex, nofollow", seo.Robots())
	assert.Equal(t, "https://sarveen.io/", seo.Canonical)
}
