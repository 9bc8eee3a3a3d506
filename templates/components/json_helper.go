package components

import (
	"encoding/json"
	"log"
)

// JSON marshals an object to a JSON string, returning "{}" on error.
// encoding/json escapes <, > and & so the output is safe inside a script element.
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}

// QA is a question and its answer, already translated
type QA struct {
	Question string
	Answer   string
}

// FAQPageSchema returns schema.org FAQPage structured data for search engines
func FAQPageSchema(entries []QA) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		items = append(items, map[string]interface{}{
			"@type": "Question",
			"name":  e.Question,
			"acceptedAnswer": map[string]interface{}{
				"@type": "Answer",
				"text":  e.Answer,
			},
		})
	}
	return map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": items,
	}
}
