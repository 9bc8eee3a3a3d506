package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"net/mail"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"sarveen_landing_go/models"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// ErrSubmissionFailed covers every way forwarding a submission can fail:
// network errors, non-2xx status, malformed JSON and a negative answer.
var ErrSubmissionFailed = errors.New("submission failed")

// LeadForwarder sends a contact submission to the form-processing endpoint
type LeadForwarder interface {
	Submit(ctx context.Context, sub models.Submission) error
}

// Relay is the forwarder used by the contact handlers, set at startup
var Relay LeadForwarder

// maxRelayResponseBytes bounds how much of the endpoint's answer is read
const maxRelayResponseBytes = 64 << 10

// relayResponse is the answer of the form endpoint
type relayResponse struct {
	Success bool `json:"success"`
}

// FormRelay forwards submissions as URL-encoded POSTs to a fixed endpoint
type FormRelay struct {
	endpoint string
	client   *http.Client
}

// NewFormRelay creates a relay for endpoint. A zero timeout leaves the call
// unbounded; it then ends when the network stack gives up.
func NewFormRelay(endpoint string, timeout time.Duration) *FormRelay {
	return NewFormRelayWithClient(endpoint, &http.Client{Timeout: timeout})
}

// NewFormRelayWithClient creates a relay using a caller-provided HTTP client
func NewFormRelayWithClient(endpoint string, client *http.Client) *FormRelay {
	if client == nil {
		client = http.DefaultClient
	}
	return &FormRelay{endpoint: endpoint, client: client}
}

// Endpoint returns the URL submissions are posted to
func (r *FormRelay) Endpoint() string {
	return r.endpoint
}

// Submit posts the four fields and succeeds only on a 2xx status with {"success": true}.
// There is no retry; any failure is returned wrapped in ErrSubmissionFailed.
func (r *FormRelay) Submit(ctx context.Context, sub models.Submission) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(sub.Values().Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %v", ErrSubmissionFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()

	// Decode before looking at the status: a non-JSON body is a failure either way
	var result relayResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRelayResponseBytes)).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response (status %d): %v", ErrSubmissionFailed, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: endpoint returned status %d", ErrSubmissionFailed, resp.StatusCode)
	}

	if !result.Success {
		return fmt.Errorf("%w: endpoint reported success=false", ErrSubmissionFailed)
	}

	return nil
}

// NewReferenceID returns an id tagging one submission attempt in logs
func NewReferenceID() string {
	return uuid.New().String()[:8]
}

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeSubmission trims every field and strips any markup.
// Entities produced by the sanitizer are unescaped so "Smith & Sons" survives as typed.
func SanitizeSubmission(sub models.Submission) models.Submission {
	return models.Submission{
		Name:     sanitizeField(sub.Name),
		Phone:    sanitizeField(sub.Phone),
		Email:    strings.ToLower(sanitizeField(sub.Email)),
		Business: sanitizeField(sub.Business),
	}
}

func sanitizeField(value string) string {
	cleaned := html.UnescapeString(strictPolicy.Sanitize(strings.TrimSpace(value)))
	return strings.Join(strings.Fields(cleaned), " ")
}

// ValidationError lists the fields that keep a submission from being forwarded
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid submission fields: %s", strings.Join(e.Fields, ", "))
}

// ValidateSubmission checks required fields, the optional email's syntax and field lengths.
// It expects a sanitized submission.
func ValidateSubmission(sub models.Submission) error {
	invalid := sub.MissingRequired()

	if sub.Email != "" && !isValidEmail(sub.Email) {
		invalid = append(invalid, models.FieldEmail)
	}

	fields := []struct {
		name  string
		value string
	}{
		{models.FieldName, sub.Name},
		{models.FieldPhone, sub.Phone},
		{models.FieldEmail, sub.Email},
		{models.FieldBusiness, sub.Business},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > models.MaxFieldLength && !slices.Contains(invalid, f.name) {
			invalid = append(invalid, f.name)
		}
	}

	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}
	return nil
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Ada <ada@example.com>"
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}

// ForwardSubmission relays a sanitized, validated submission and logs the outcome.
// The call is detached from ctx cancellation: once started it runs to completion.
func ForwardSubmission(ctx context.Context, forwarder LeadForwarder, sub models.Submission) error {
	ref := NewReferenceID()
	start := time.Now()

	err := forwarder.Submit(context.WithoutCancel(ctx), sub)
	if err != nil {
		if !errors.Is(err, ErrSubmissionFailed) {
			err = fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
		}
		log.Printf("[ERROR] Contact submission %s failed after %s: %v", ref, time.Since(start).Round(time.Millisecond), err)
		return err
	}

	log.Printf("[INFO] Contact submission %s forwarded in %s (email: %t, business: %t)",
		ref, time.Since(start).Round(time.Millisecond), sub.Email != "", sub.Business != "")
	return nil
}
