// Package i18n holds the locales served by the site, localized strings with
// their fallback rules and the message dictionary shared by the booking flow.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	Korean   Locale = "ko"
	English  Locale = "en"
	Japanese Locale = "ja"
	Chinese  Locale = "zh"

	Default = Korean
)

// Supported is ordered so that the default locale comes first; the matcher
// below relies on it.
var Supported = []Locale{Korean, English, Japanese, Chinese}

var matcher = language.NewMatcher([]language.Tag{
	language.Korean,
	language.English,
	language.Japanese,
	language.Chinese,
})

// Parse accepts a bare code or a region-qualified one ("en-US", "zh_CN").
func Parse(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if idx := strings.IndexAny(s, "-_"); idx >= 0 {
		s = s[:idx]
	}

	for _, l := range Supported {
		if string(l) == s {
			return l, true
		}
	}

	return "", false
}

// Negotiate picks the best supported locale for an Accept-Language header
// value, falling back to Default.
func Negotiate(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(Supported) {
		return Default
	}

	return Supported[idx]
}

// Text is a string translated per locale.
type Text map[Locale]string

// Get returns the translation for l, then English, then Korean.
func (t Text) Get(l Locale) string {
	if s, ok := t[l]; ok && s != "" {
		return s
	}

	if s, ok := t[English]; ok && s != "" {
		return s
	}

	return t[Korean]
}
