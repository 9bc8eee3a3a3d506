package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"sarveen_landing_go/config"
	"sarveen_landing_go/models"
	"sarveen_landing_go/services"
	"sarveen_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// fakeForwarder records submissions instead of calling the form endpoint
type fakeForwarder struct {
	mu    sync.Mutex
	err   error
	calls []models.Submission
}

func (f *fakeForwarder) Submit(ctx context.Context, sub models.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sub)
	return f.err
}

func (f *fakeForwarder) Calls() []models.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Submission(nil), f.calls...)
}

// useForwarder swaps the package relay for the duration of the test
func useForwarder(t *testing.T, fwd services.LeadForwarder) {
	old := services.Relay
	services.Relay = fwd
	t.Cleanup(func() { services.Relay = old })
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:      "test",
		AppURL:           "https://sarveen.io",
		SiteName:         "Sarveen.io",
		ContactRateLimit: 10,
		EmailTestMode:    true,
	}
}

func setupEcho(t *testing.T, method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	require.NoError(t, i18n.Load())

	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", testConfig())
	c.Set("csrf", "test-csrf-token")

	return e, c, rec
}
