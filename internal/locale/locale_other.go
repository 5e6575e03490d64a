//go:build !windows

package locale

import "os"

// UILocale reads LC_ALL, LC_MESSAGES and LANG in that order.
func UILocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return normalize(v)
		}
	}
	return ""
}
