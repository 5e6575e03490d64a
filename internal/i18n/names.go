package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName returns the native name of code, its English name, or code.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" && name != code {
		return name
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// DetectLanguage chooses the language of a first run from the platform UI
// locale: an available exact match, then zh-CN for any Chinese locale, then
// English.
func DetectLanguage(uiLocale string, available []string) string {
	if uiLocale == "" {
		return English
	}
	for _, code := range available {
		if code == uiLocale {
			return code
		}
	}
	tag, err := language.Parse(uiLocale)
	if err != nil {
		return English
	}
	if base, _ := tag.Base(); base.String() == "zh" {
		return "zh-CN"
	}
	return English
}
