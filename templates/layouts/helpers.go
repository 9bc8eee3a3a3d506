package layouts

import "strings"

// alternateURL returns the URL of a page in another published language
func alternateURL(canonical, lang string) string {
	base := canonical
	if i := strings.Index(base, "?"); i >= 0 {
		base = base[:i]
	}
	if lang == "en" {
		return base
	}
	return base + "?lang=" + lang
}
