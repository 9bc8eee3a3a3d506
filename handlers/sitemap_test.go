package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(t, http.MethodGet, "/sitemap.xml", nil)

	require.NoError(t, GetSitemapHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/xml")
	assert.True(t, strings.HasPrefix(rec.Body.String(), xml.Header))

	var urlSet struct {
		URLs []SitemapURL `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &urlSet))
	require.Len(t, urlSet.URLs, 2)
	assert.Equal(t, "https://sarveen.io/", urlSet.URLs[0].Loc)
	assert.Equal(t, "https://sarveen.io/?lang=es", urlSet.URLs[1].Loc)
}

func TestGetRobotsHandler(t *testing.T) {
	_, c, rec := setupEcho(t, http.MethodGet, "/robots.txt", nil)

	require.NoError(t, GetRobotsHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /api/")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://sarveen.io/sitemap.xml")
}

func TestHealthHandler(t *testing.T) {
	_, c, rec := setupEcho(t, http.MethodGet, "/healthz", nil)

	require.NoError(t, HealthHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
