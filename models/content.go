package models

// Benefit is one card of the benefits grid. Text fields hold i18n keys.
type Benefit struct {
	TitleKey string
	BodyKey  string
	IconPath string // SVG path data drawn on a 24x24 viewBox
	Accent   string // CSS modifier selecting the icon gradient
	Wide     bool   // Spans two columns on medium screens
}

// FAQ is one question/answer pair. Both fields hold i18n keys.
type FAQ struct {
	QuestionKey string
	AnswerKey   string
}
