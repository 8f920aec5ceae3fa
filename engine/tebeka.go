package engine

import (
	tebeka "github.com/tebeka/strftime"

	"github.com/bytom/timefmt/calendar"
)

func init() {
	Register("tebeka", func() Renderer { return Tebeka{} })
}

// Tebeka renders with github.com/tebeka/strftime, which follows Python's
// directive set and rejects anything else, %z included.
type Tebeka struct{}

// Name implements Renderer.
func (Tebeka) Name() string { return "tebeka" }

// Render implements Renderer.
func (Tebeka) Render(buf []byte, pattern string, b calendar.Breakdown) int {
	out, err := tebeka.Format(pattern, b.Time())
	if err != nil {
		return 0
	}
	return put(buf, out)
}
