package timefmt

import (
	"fmt"
	"strings"
)

// msPlaceholder is replaced with the milliseconds after rendering.
const msPlaceholder = "{ms}"

func substituteMillis(pattern, rendered string, ms uint16) string {
	if !strings.Contains(pattern, msPlaceholder) {
		return rendered
	}
	return strings.ReplaceAll(rendered, msPlaceholder, fmt.Sprintf("%03d", ms))
}

// insertOffsetColon turns a trailing "+hhmm" offset into "+hh:mm". It only
// looks at the end of s, so the offset has to be the last field.
func insertOffsetColon(s string) string {
	n := len(s)
	if n > 5 && '0' <= s[n-1] && s[n-1] <= '9' {
		return s[:n-2] + ":" + s[n-2:]
	}
	return s
}
