package engine

import (
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/bytom/timefmt/calendar"
	"github.com/bytom/timefmt/common"
)

// DefaultCacheSize bounds the number of compiled patterns a Lestrrat engine
// keeps.
const DefaultCacheSize = 256

func init() {
	Register("lestrrat", func() Renderer { return NewLestrrat(DefaultCacheSize) })
}

type appendFunc func([]byte, time.Time) []byte

func (f appendFunc) Append(b []byte, t time.Time) []byte {
	return f(b, t)
}

func stdlib(layout string) appendFunc {
	return func(b []byte, t time.Time) []byte {
		return t.AppendFormat(b, layout)
	}
}

func appendPadded(b []byte, v int, width int, pad byte) []byte {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b = append(b, pad)
	}
	return append(b, s...)
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return h
}

// weekNumber counts weeks starting on firstDay, as %U (Sunday) and %W
// (Monday) do.
func weekNumber(t time.Time, firstDay time.Weekday) int {
	wday := (int(t.Weekday()) - int(firstDay) + 7) % 7
	return (t.YearDay() - 1 + 7 - wday) / 7
}

// Directives the lestrrat default set lacks or renders differently from
// glibc under LC_TIME=C.
var glibcSpecs = map[byte]strftime.Appender{
	'C': appendFunc(func(b []byte, t time.Time) []byte { return appendPadded(b, t.Year()/100, 2, '0') }),
	'e': appendFunc(func(b []byte, t time.Time) []byte { return appendPadded(b, t.Day(), 2, ' ') }),
	'G': appendFunc(func(b []byte, t time.Time) []byte {
		year, _ := t.ISOWeek()
		return strconv.AppendInt(b, int64(year), 10)
	}),
	'g': appendFunc(func(b []byte, t time.Time) []byte {
		year, _ := t.ISOWeek()
		return appendPadded(b, ((year%100)+100)%100, 2, '0')
	}),
	'h': stdlib("Jan"),
	'I': appendFunc(func(b []byte, t time.Time) []byte { return appendPadded(b, hour12(t), 2, '0') }),
	'k': appendFunc(func(b []byte, t time.Time) []byte { return appendPadded(b, t.Hour(), 2, ' ') }),
	'l': appendFunc(func(b []byte, t time.Time) []byte { return appendPadded(b, hour12(t), 2, ' ') }),
	'P': stdlib("pm"),
	's': appendFunc(func(b []byte, t time.Time) []byte { return strconv.AppendInt(b, t.Unix(), 10) }),
	'u': appendFunc(func(b []byte, t time.Time) []byte {
		wday := int(t.Weekday())
		if wday == 0 {
			wday = 7
		}
		return strconv.AppendInt(b, int64(wday), 10)
	}),
	'U': appendFunc(func(b []byte, t time.Time) []byte { return appendPadded(b, weekNumber(t, time.Sunday), 2, '0') }),
	'V': appendFunc(func(b []byte, t time.Time) []byte {
		_, week := t.ISOWeek()
		return appendPadded(b, week, 2, '0')
	}),
	'W': appendFunc(func(b []byte, t time.Time) []byte { return appendPadded(b, weekNumber(t, time.Monday), 2, '0') }),
	'+': stdlib("Mon Jan _2 15:04:05 MST 2006"),
}

// Lestrrat renders with github.com/lestrrat-go/strftime, extended to the
// glibc directive set. Compiled patterns are kept in an LRU cache.
type Lestrrat struct {
	specs strftime.SpecificationSet
	cache *common.Cache
}

// NewLestrrat returns a Lestrrat engine caching up to cacheSize compiled
// patterns.
func NewLestrrat(cacheSize int) *Lestrrat {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	specs := strftime.NewSpecificationSet()
	for c, a := range glibcSpecs {
		if err := specs.Set(c, a); err != nil {
			panic(err)
		}
	}
	return &Lestrrat{specs: specs, cache: common.NewCache(cacheSize)}
}

// Name implements Renderer.
func (e *Lestrrat) Name() string { return "lestrrat" }

// CacheStats reports compiled pattern cache hits and misses.
func (e *Lestrrat) CacheStats() (hits, misses uint64) {
	return e.cache.Stats()
}

func (e *Lestrrat) compile(pattern string) (*strftime.Strftime, error) {
	if v, ok := e.cache.Get(pattern); ok {
		return v.(*strftime.Strftime), nil
	}

	f, err := strftime.New(stripModifiers(pattern), strftime.WithSpecificationSet(e.specs))
	if err != nil {
		return nil, err
	}
	e.cache.Add(pattern, f)
	return f, nil
}

// Render implements Renderer.
func (e *Lestrrat) Render(buf []byte, pattern string, b calendar.Breakdown) int {
	f, err := e.compile(pattern)
	if err != nil {
		return 0
	}
	return put(buf, f.FormatString(b.Time()))
}

// stripModifiers drops the E and O modifiers of %Ec, %Oy and friends. In the
// C locale the alternative representations are the plain ones.
func stripModifiers(pattern string) string {
	out := make([]byte, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		out = append(out, c)
		if c != '%' || i+1 >= len(pattern) {
			continue
		}
		i++
		next := pattern[i]
		if (next == 'E' || next == 'O') && i+1 < len(pattern) && isAlpha(pattern[i+1]) {
			continue
		}
		out = append(out, next)
	}
	return string(out)
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
