package engine

import (
	jehiah "github.com/jehiah/go-strftime"

	"github.com/bytom/timefmt/calendar"
)

func init() {
	Register("jehiah", func() Renderer { return Jehiah{} })
}

// Jehiah renders with github.com/jehiah/go-strftime. It knows a smaller
// directive set than glibc.
type Jehiah struct{}

// Name implements Renderer.
func (Jehiah) Name() string { return "jehiah" }

// Render implements Renderer.
func (Jehiah) Render(buf []byte, pattern string, b calendar.Breakdown) int {
	return put(buf, jehiah.Format(pattern, b.Time()))
}
