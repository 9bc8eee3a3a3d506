package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"sarveen_landing_go/config"
	"sarveen_landing_go/services/i18n"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the landing page once per published language
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	urls := make([]SitemapURL, 0, len(i18n.SupportedLanguages))
	for _, lang := range i18n.SupportedLanguages {
		loc := cfg.AppURL + "/"
		priority := float32(1.0)
		if lang != "en" {
			loc += "?lang=" + lang
			priority = 0.9
		}
		urls = append(urls, SitemapURL{Loc: loc, ChangeFreq: "monthly", Priority: priority})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler allows everything except the API and points at the sitemap
func GetRobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", cfg.AppURL)

	return c.String(http.StatusOK, b.String())
}
