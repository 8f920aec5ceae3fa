package engine

import (
	"strings"
	"time"

	fastly "github.com/fastly/go-utils/strftime"

	"github.com/bytom/timefmt/calendar"
)

func init() {
	Register("fastly", func() Renderer { return Fastly{} })
}

// Fastly renders with fastly's pure Go strftime, which mirrors glibc under
// LC_TIME=C and passes unknown directives through untouched. Its %I prints
// 00 for the midnight hour, so %I is expanded before the pattern is handed
// over.
type Fastly struct{}

// Name implements Renderer.
func (Fastly) Name() string { return "fastly" }

// Render implements Renderer.
func (Fastly) Render(buf []byte, pattern string, b calendar.Breakdown) int {
	t := b.Time()
	return put(buf, fastly.StrftimePure(expandHour12(pattern, t), t))
}

// expandHour12 replaces each %I conversion with the 01-12 hour of t.
func expandHour12(pattern string, t time.Time) string {
	if !strings.Contains(pattern, "%I") {
		return pattern
	}

	hour := string(appendPadded(nil, hour12(t), 2, '0'))
	var sb strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			sb.WriteByte(c)
			continue
		}
		i++
		if pattern[i] == 'I' {
			sb.WriteString(hour)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(pattern[i])
	}
	return sb.String()
}

