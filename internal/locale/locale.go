// Package locale reports the platform UI locale as a BCP 47 style name such
// as "zh-CN".
package locale

import "strings"

// normalize turns POSIX locale names ("zh_CN.UTF-8@euro") into "zh-CN".
func normalize(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "C" || name == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(name, "_", "-")
}
