package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sarveen_landing_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSubmission = models.Submission{
	Name:     "Ada Lovelace",
	Phone:    "+1234567890",
	Email:    "ada@example.com",
	Business: "Smith & Sons",
}

func TestFormRelaySubmit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotMethod, gotContentType string
		var gotForm map[string][]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotContentType = r.Header.Get("Content-Type")
			if err := r.ParseForm(); err == nil {
				gotForm = r.PostForm
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		}))
		defer server.Close()

		relay := NewFormRelay(server.URL, 0)
		err := relay.Submit(context.Background(), testSubmission)

		assert.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
		assert.Len(t, gotForm, 4)
		assert.Equal(t, []string{"Ada Lovelace"}, gotForm["name"])
		assert.Equal(t, []string{"+1234567890"}, gotForm["phone"])
		assert.Equal(t, []string{"ada@example.com"}, gotForm["email"])
		assert.Equal(t, []string{"Smith & Sons"}, gotForm["business"])
	})

	t.Run("SuccessFalse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false, "error": "sheet locked"}`))
		}))
		defer server.Close()

		err := NewFormRelay(server.URL, 0).Submit(context.Background(), testSubmission)
		assert.ErrorIs(t, err, ErrSubmissionFailed)
		assert.Contains(t, err.Error(), "success=false")
	})

	t.Run("MissingSuccessField", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result": "ok"}`))
		}))
		defer server.Close()

		err := NewFormRelay(server.URL, 0).Submit(context.Background(), testSubmission)
		assert.ErrorIs(t, err, ErrSubmissionFailed)
	})

	t.Run("NonOKStatusWithSuccessBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		err := NewFormRelay(server.URL, 0).Submit(context.Background(), testSubmission)
		assert.ErrorIs(t, err, ErrSubmissionFailed)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html>Moved Temporarily</html>"))
		}))
		defer server.Close()

		err := NewFormRelay(server.URL, 0).Submit(context.Background(), testSubmission)
		assert.ErrorIs(t, err, ErrSubmissionFailed)
		assert.Contains(t, err.Error(), "failed to decode")
	})

	t.Run("NetworkFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		err := NewFormRelay(url, 0).Submit(context.Background(), testSubmission)
		assert.ErrorIs(t, err, ErrSubmissionFailed)
	})

	t.Run("Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		err := NewFormRelay(server.URL, 20*time.Millisecond).Submit(context.Background(), testSubmission)
		assert.ErrorIs(t, err, ErrSubmissionFailed)
	})
}

type fakeForwarder struct {
	err   error
	calls int
	ctx   context.Context
}

func (f *fakeForwarder) Submit(ctx context.Context, sub models.Submission) error {
	f.calls++
	f.ctx = ctx
	return f.err
}

func TestForwardSubmission(t *testing.T) {
	t.Run("IgnoresCallerCancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fwd := &fakeForwarder{}
		err := ForwardSubmission(ctx, fwd, testSubmission)

		assert.NoError(t, err)
		assert.Equal(t, 1, fwd.calls)
		require.NotNil(t, fwd.ctx)
		assert.NoError(t, fwd.ctx.Err())
	})

	t.Run("WrapsForeignErrors", func(t *testing.T) {
		fwd := &fakeForwarder{err: errors.New("boom")}
		err := ForwardSubmission(context.Background(), fwd, testSubmission)

		assert.ErrorIs(t, err, ErrSubmissionFailed)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestSanitizeSubmission(t *testing.T) {
	got := SanitizeSubmission(models.Submission{
		Name:     "  <b>Ada</b>   Lovelace ",
		Phone:    " +1 234 567 890 ",
		Email:    " Ada@Example.COM ",
		Business: "Smith & Sons<script>alert(1)</script>",
	})

	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "+1 234 567 890", got.Phone)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "Smith & Sons", got.Business)
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name    string
		sub     models.Submission
		invalid []string
	}{
		{
			name: "Valid with optional fields empty",
			sub:  models.Submission{Name: "Ada", Phone: "123"},
		},
		{
			name: "Valid with all fields",
			sub:  testSubmission,
		},
		{
			name:    "Missing name",
			sub:     models.Submission{Phone: "123"},
			invalid: []string{models.FieldName},
		},
		{
			name:    "Missing name and phone",
			sub:     models.Submission{Email: "ada@example.com"},
			invalid: []string{models.FieldName, models.FieldPhone},
		},
		{
			name:    "Malformed email",
			sub:     models.Submission{Name: "Ada", Phone: "123", Email: "ada@"},
			invalid: []string{models.FieldEmail},
		},
		{
			name:    "Email with display name",
			sub:     models.Submission{Name: "Ada", Phone: "123", Email: "Ada <ada@example.com>"},
			invalid: []string{models.FieldEmail},
		},
		{
			name:    "Business too long",
			sub:     models.Submission{Name: "Ada", Phone: "123", Business: strings.Repeat("x", models.MaxFieldLength+1)},
			invalid: []string{models.FieldBusiness},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.sub)
			if tt.invalid == nil {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.invalid, vErr.Fields)
		})
	}
}

func TestFormRelayEndpoint(t *testing.T) {
	assert.Equal(t, "https://example.com/exec", NewFormRelay("https://example.com/exec", 0).Endpoint())
}

func TestNewReferenceID(t *testing.T) {
	a, b := NewReferenceID(), NewReferenceID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
