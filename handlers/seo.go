package handlers

import (
	"sarveen_landing_go/config"
	"sarveen_landing_go/models"
	"sarveen_landing_go/services/i18n"
)

const ogImagePath = "/static/images/og-image.png"

// GetSEO returns the landing page metadata in lang
func GetSEO(cfg *config.Config, lang string) *models.SEO {
	args := map[string]interface{}{"site": cfg.SiteName}

	canonical := cfg.AppURL + "/"
	if lang != "en" {
		canonical += "?lang=" + lang
	}

	seo := models.DefaultSEO(
		i18n.Translate(lang, "meta.title", args),
		i18n.Translate(lang, "meta.description", args),
	).
		WithCanonical(canonical).
		WithOGImage(cfg.AppURL+ogImagePath).
		WithLocale(lang, i18n.Alternate(lang))

	seo.Keywords = i18n.Translate(lang, "meta.keywords")
	return seo
}
