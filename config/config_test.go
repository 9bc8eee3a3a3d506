package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SARVEEN_TEST_VALUE", "hello")
	assert.Equal(t, "hello", getEnv("SARVEEN_TEST_VALUE", "default"))
	assert.Equal(t, "default", getEnv("SARVEEN_TEST_MISSING", "default"))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		def      bool
		expected bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"ON", false, true},
		{"no", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SARVEEN_TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, getEnvBool("SARVEEN_TEST_BOOL", tt.def))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SARVEEN_TEST_INT", "25")
	assert.Equal(t, 25, getEnvInt("SARVEEN_TEST_INT", 10))

	t.Setenv("SARVEEN_TEST_INT", "abc")
	assert.Equal(t, 10, getEnvInt("SARVEEN_TEST_INT", 10))

	t.Setenv("SARVEEN_TEST_INT", "-3")
	assert.Equal(t, 10, getEnvInt("SARVEEN_TEST_INT", 10))
}

func TestGetEnvDuration(t *testing.T) {
	t.Run("Seconds", func(t *testing.T) {
		t.Setenv("SARVEEN_TEST_DURATION", "15")
		assert.Equal(t, 15*time.Second, getEnvDuration("SARVEEN_TEST_DURATION", 0))
	})

	t.Run("GoDuration", func(t *testing.T) {
		t.Setenv("SARVEEN_TEST_DURATION", "1m30s")
		assert.Equal(t, 90*time.Second, getEnvDuration("SARVEEN_TEST_DURATION", 0))
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("SARVEEN_TEST_DURATION", "soon")
		assert.Equal(t, 5*time.Second, getEnvDuration("SARVEEN_TEST_DURATION", 5*time.Second))
	})

	t.Run("Unset", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), getEnvDuration("SARVEEN_TEST_DURATION_UNSET", 0))
	})
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FORM_ENDPOINT_URL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("APP_URL", "https://sarveen.io/")

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, DefaultFormEndpointURL, cfg.FormEndpointURL)
	assert.Equal(t, "https://sarveen.io", cfg.AppURL)
	assert.Equal(t, time.Duration(0), cfg.FormEndpointTimeout)
	assert.Equal(t, 10, cfg.ContactRateLimit)
	assert.True(t, cfg.EmailTestMode)
	assert.False(t, cfg.TurnstileEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestValidateFormEndpoint(t *testing.T) {
	assert.NoError(t, ValidateFormEndpoint("https://example.com/exec", "production"))
	assert.NoError(t, ValidateFormEndpoint("http://localhost:9000/exec", "development"))
	assert.NoError(t, ValidateFormEndpoint("not-a-url", "development"))

	err := ValidateFormEndpoint("http://example.com/exec", "production")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "must use HTTPS")
	}

	err = ValidateFormEndpoint("not-a-url", "production")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "absolute URL")
	}
}
