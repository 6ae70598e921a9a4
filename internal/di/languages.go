package di

import "strings"

// languageCodes maps the bundled language display names onto ISO 639-1 codes.
var languageCodes = map[string]string{
	"arabic":     "ar",
	"chinese":    "zh",
	"dutch":      "nl",
	"english":    "en",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"japanese":   "ja",
	"korean":     "ko",
	"polish":     "pl",
	"portuguese": "pt",
	"russian":    "ru",
	"spanish":    "es",
	"swedish":    "sv",
	"turkish":    "tr",
}

// LanguageCode resolves the catalog code for a language display name. Names
// outside the bundled set fall back to their lowercased form so custom
// languages added through settings still get a stable code.
func LanguageCode(display string) string {
	lower := strings.ToLower(strings.TrimSpace(display))
	if code, ok := languageCodes[lower]; ok {
		return code
	}
	return lower
}
