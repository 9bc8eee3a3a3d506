package models

import (
	"net/url"
	"slices"
)

// Form field names, shared by the HTML form, the relay payload and the JSON API.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldBusiness = "business"
)

// MaxFieldLength caps every submission field
const MaxFieldLength = 200

// Submission is the transient record a visitor fills in on the contact form.
// It is never stored: it lives for one request and is forwarded to the form endpoint.
type Submission struct {
	Name     string `json:"name" form:"name"`
	Phone    string `json:"phone" form:"phone"`
	Email    string `json:"email" form:"email"`
	Business string `json:"business" form:"business"`
}

// Values returns the four fields as URL-encoded form values
func (s Submission) Values() url.Values {
	return url.Values{
		FieldName:     {s.Name},
		FieldPhone:    {s.Phone},
		FieldEmail:    {s.Email},
		FieldBusiness: {s.Business},
	}
}

// MissingRequired returns the names of required fields left empty
func (s Submission) MissingRequired() []string {
	var missing []string
	if s.Name == "" {
		missing = append(missing, FieldName)
	}
	if s.Phone == "" {
		missing = append(missing, FieldPhone)
	}
	return missing
}

// IsBlank reports whether every field is empty
func (s Submission) IsBlank() bool {
	return s == Submission{}
}

// SubmissionStatus is the state of the contact form as shown to the visitor
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSuccess    SubmissionStatus = "success"
	StatusError      SubmissionStatus = "error"
)

// FormProblem selects which generic message accompanies StatusError
type FormProblem string

const (
	ProblemNone        FormProblem = ""
	ProblemInvalid     FormProblem = "invalid"
	ProblemCaptcha     FormProblem = "captcha"
	ProblemFailed      FormProblem = "failed"
	ProblemRateLimited FormProblem = "rate_limited"
)

// ContactFormState is everything the contact form partial needs to render
type ContactFormState struct {
	Submission       Submission
	Status           SubmissionStatus
	Problem          FormProblem
	Invalid          []string // Field names that failed validation
	ConfirmEmail     bool     // Show the "check your email" line after success
	CSRFToken        string
	TurnstileSiteKey string
}

// NewContactFormState returns an empty form in the idle state
func NewContactFormState(csrfToken, turnstileSiteKey string) ContactFormState {
	return ContactFormState{
		Status:           StatusIdle,
		CSRFToken:        csrfToken,
		TurnstileSiteKey: turnstileSiteKey,
	}
}

// Succeeded clears the fields and reports success
func (s ContactFormState) Succeeded(confirmEmail bool) ContactFormState {
	s.Submission = Submission{}
	s.Status = StatusSuccess
	s.Problem = ProblemNone
	s.Invalid = nil
	s.ConfirmEmail = confirmEmail
	return s
}

// Failed keeps the visitor's values and reports the problem
func (s ContactFormState) Failed(problem FormProblem, invalid ...string) ContactFormState {
	s.Status = StatusError
	s.Problem = problem
	s.Invalid = invalid
	s.ConfirmEmail = false
	return s
}

// IsSubmitting reports whether the submit control must be disabled
func (s ContactFormState) IsSubmitting() bool {
	return s.Status == StatusSubmitting
}

// HasError reports whether a field failed validation
func (s ContactFormState) HasError(field string) bool {
	return slices.Contains(s.Invalid, field)
}

// ErrorKey returns the i18n key of the message shown for StatusError
func (s ContactFormState) ErrorKey() string {
	switch s.Problem {
	case ProblemInvalid:
		return "contact.error.invalid"
	case ProblemCaptcha:
		return "contact.error.captcha"
	case ProblemRateLimited:
		return "contact.error.rate_limited"
	default:
		return "contact.error.failed"
	}
}
