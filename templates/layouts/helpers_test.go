package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlternateURL(t *testing.T) {
	assert.Equal(t, "https://sarveen.io/", alternateURL("https://sarveen.io/", "en"))
	assert.Equal(t, "https://sarveen.io/?lang=es", alternateURL("https://sarveen.io/", "es"))
	assert.Equal(t, "https://sarveen.io/", alternateURL("https://sarveen.io/?lang=es", "en"))
}
