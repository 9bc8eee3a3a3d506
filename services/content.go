package services

import "sarveen_landing_go/models"

// LandingBenefits returns the cards of the benefits grid in display order
func LandingBenefits() []models.Benefit {
	return []models.Benefit{
		{
			TitleKey: "benefits.funnels.title",
			BodyKey:  "benefits.funnels.body",
			IconPath: "M13 10V3L4 14h7v7l9-11h-7z",
			Accent:   "cyan",
		},
		{
			TitleKey: "benefits.qualification.title",
			BodyKey:  "benefits.qualification.body",
			IconPath: "M9 12l2 2 4-4m6 2a9 9 0 11-18 0 9 9 0 0118 0z",
			Accent:   "purple",
		},
		{
			TitleKey: "benefits.booking.title",
			BodyKey:  "benefits.booking.body",
			IconPath: "M8 7V3m8 4V3m-9 8h10M5 21h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v12a2 2 0 002 2z",
			Accent:   "green",
			Wide:     true,
		},
	}
}

// LandingFAQs returns the FAQ entries in display order
func LandingFAQs() []models.FAQ {
	return []models.FAQ{
		{QuestionKey: "faq.results.q", AnswerKey: "faq.results.a"},
		{QuestionKey: "faq.included.q", AnswerKey: "faq.included.a"},
		{QuestionKey: "faq.industries.q", AnswerKey: "faq.industries.a"},
		{QuestionKey: "faq.contract.q", AnswerKey: "faq.contract.a"},
	}
}
