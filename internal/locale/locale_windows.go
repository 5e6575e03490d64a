//go:build windows

package locale

import "golang.org/x/sys/windows"

// UILocale returns the first preferred UI language of the current user.
func UILocale() string {
	langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err != nil || len(langs) == 0 {
		return ""
	}
	return normalize(langs[0])
}
