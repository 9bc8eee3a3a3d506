package pages

import (
	"context"

	"sarveen_landing_go/models"
	"sarveen_landing_go/services/i18n"
	"sarveen_landing_go/templates/components"
)

// LandingViewModel holds everything the landing page renders
type LandingViewModel struct {
	SEO      *models.SEO
	SiteName string
	Year     int
	Benefits []models.Benefit
	FAQs     []models.FAQ
	Form     models.ContactFormState
}

// faqStructuredData returns the FAQPage JSON-LD for the page's FAQ entries
func faqStructuredData(ctx context.Context, faqs []models.FAQ) string {
	entries := make([]components.QA, 0, len(faqs))
	for _, f := range faqs {
		entries = append(entries, components.QA{
			Question: i18n.T(ctx, f.QuestionKey),
			Answer:   i18n.T(ctx, f.AnswerKey),
		})
	}
	return components.JSON(components.FAQPageSchema(entries))
}

// languageSwitchURL links to the page in the other published language
func languageSwitchURL(ctx context.Context) string {
	return "/?lang=" + i18n.Alternate(i18n.GetLocale(ctx))
}

func copyrightArgs(vm LandingViewModel) map[string]interface{} {
	return map[string]interface{}{"year": vm.Year, "site": vm.SiteName}
}
