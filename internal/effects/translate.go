package effects

import (
	"net/url"
	"strings"
)

// languageCodes maps language names to Google Translate codes. Indian
// languages come first since the assistant promises to cover all of them.
var languageCodes = map[string]string{
	"assamese":  "as",
	"bengali":   "bn",
	"bangla":    "bn",
	"bhojpuri":  "bho",
	"dogri":     "doi",
	"gujarati":  "gu",
	"hindi":     "hi",
	"kannada":   "kn",
	"konkani":   "gom",
	"maithili":  "mai",
	"malayalam": "ml",
	"manipuri":  "mni-Mtei",
	"marathi":   "mr",
	"nepali":    "ne",
	"odia":      "or",
	"oriya":     "or",
	"punjabi":   "pa",
	"sanskrit":  "sa",
	"sindhi":    "sd",
	"tamil":     "ta",
	"telugu":    "te",
	"urdu":      "ur",

	"arabic":     "ar",
	"chinese":    "zh-CN",
	"dutch":      "nl",
	"english":    "en",
	"french":     "fr",
	"german":     "de",
	"greek":      "el",
	"indonesian": "id",
	"italian":    "it",
	"japanese":   "ja",
	"korean":     "ko",
	"persian":    "fa",
	"portuguese": "pt",
	"russian":    "ru",
	"spanish":    "es",
	"swahili":    "sw",
	"thai":       "th",
	"turkish":    "tr",
	"vietnamese": "vi",
}

// LanguageCode returns the translate code for a language name. Unknown
// names are passed through lower-cased, so "ta" or "fr" also work.
func LanguageCode(language string) string {
	name := strings.ToLower(strings.TrimSpace(language))
	if code, ok := languageCodes[name]; ok {
		return code
	}
	return name
}

// TranslateURL opens text in Google Translate with the target language set.
func TranslateURL(language, text string) string {
	q := url.Values{}
	q.Set("sl", "auto")
	q.Set("tl", LanguageCode(language))
	q.Set("text", text)
	q.Set("op", "translate")
	return "https://translate.google.com/?" + q.Encode()
}
