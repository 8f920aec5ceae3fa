package timefmt

import (
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"

	"github.com/bytom/timefmt/calendar"
	"github.com/bytom/timefmt/engine"
	"github.com/bytom/timefmt/errors"
)

const (
	logModule = "timefmt"

	// retryFactor is how much larger the second rendering attempt's buffer is.
	retryFactor = 10
)

// Formatter renders timestamps with one engine, clock and local timezone.
// It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	engine engine.Renderer
	clock  clockwork.Clock
	conv   *calendar.Converter
	logger log.FieldLogger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithEngine sets the rendering engine.
func WithEngine(r engine.Renderer) Option {
	return func(f *Formatter) { f.engine = r }
}

// WithClock sets the clock read by Now and NowMs.
func WithClock(c clockwork.Clock) Option {
	return func(f *Formatter) { f.clock = c }
}

// WithLocation sets the timezone used by the Local variants. By default it
// is the host's timezone.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) { f.conv = calendar.NewConverter(loc) }
}

// WithLogger sets the logger receiving debug traces.
func WithLogger(l log.FieldLogger) Option {
	return func(f *Formatter) { f.logger = l }
}

// New returns a Formatter. Without options it uses the lestrrat engine, the
// real clock and the host's timezone.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		clock:  clockwork.NewRealClock(),
		conv:   calendar.NewConverter(nil),
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.engine == nil {
		f.engine = engine.NewLestrrat(engine.DefaultCacheSize)
	}
	return f
}

// NewWithEngine returns a Formatter using the named engine.
func NewWithEngine(name string, opts ...Option) (*Formatter, error) {
	r, err := engine.New(name)
	if err != nil {
		return nil, errors.Sub(ErrFormat, err)
	}
	return New(append([]Option{WithEngine(r)}, opts...)...), nil
}

var std = New()

// Default returns the Formatter behind the package level functions.
func Default() *Formatter {
	return std
}

// Engine returns the name of the rendering engine.
func (f *Formatter) Engine() string {
	return f.engine.Name()
}

// Now returns the current UNIX timestamp in seconds.
func (f *Formatter) Now() (TimeStamp, error) {
	return FromTime(f.clock.Now())
}

// NowMs returns the current UNIX timestamp with millisecond precision.
func (f *Formatter) NowMs() (TimeStampMs, error) {
	return FromTimeMs(f.clock.Now())
}

func (f *Formatter) breakdown(ts TimeStamp, mode calendar.Mode) (calendar.Breakdown, error) {
	b, err := f.conv.Breakdown(ts, mode)
	if err != nil {
		return calendar.Breakdown{}, errors.Sub(ErrTime, err)
	}
	return b, nil
}

// render expands an already validated pattern.
//
// The engine answers 0 both when the buffer is too small and when it cannot
// render the pattern. The first buffer is as long as the pattern; on 0 it is
// retried once with a buffer ten times larger, and a second 0 is reported as
// an invalid pattern. This is a heuristic: a pattern whose expansion exceeds
// ten times its length is indistinguishable from a broken one.
func (f *Formatter) render(pattern string, b calendar.Breakdown) (string, error) {
	size := len(pattern)
	buf := make([]byte, size)
	n := f.engine.Render(buf, pattern, b)
	if n == 0 {
		size *= retryFactor
		buf = make([]byte, size)
		n = f.engine.Render(buf, pattern, b)
		f.logger.WithFields(log.Fields{
			"module":  logModule,
			"engine":  f.engine.Name(),
			"pattern": pattern,
			"size":    size,
			"written": n,
		}).Debug("retried rendering with a larger buffer")
		if n == 0 {
			return "", errors.WithDetailf(ErrInvalidFormatString, "engine %s cannot render %q", f.engine.Name(), pattern)
		}
	}

	out := buf[:n]
	if !utf8.Valid(out) {
		return "", errors.WithDetailf(ErrUTF8, "engine %s rendered %q", f.engine.Name(), out)
	}
	return string(out), nil
}

func (f *Formatter) strftime(pattern string, ts TimeStamp, mode calendar.Mode) (string, error) {
	if err := Validate(pattern); err != nil {
		return "", err
	}
	b, err := f.breakdown(ts, mode)
	if err != nil {
		return "", err
	}
	return f.render(pattern, b)
}

// StrftimeUTC formats ts in UTC. The pattern is validated first.
func (f *Formatter) StrftimeUTC(pattern string, ts TimeStamp) (string, error) {
	return f.strftime(pattern, ts, calendar.UTC)
}

// StrftimeLocal formats ts in the local timezone. The pattern is validated
// first.
func (f *Formatter) StrftimeLocal(pattern string, ts TimeStamp) (string, error) {
	return f.strftime(pattern, ts, calendar.Local)
}

// Strftime formats ts in the given mode.
func (f *Formatter) Strftime(pattern string, ts TimeStamp, mode calendar.Mode) (string, error) {
	return f.strftime(pattern, ts, mode)
}

// StrftimeMs formats ts in the given mode and replaces every "{ms}" of the
// output with the zero padded milliseconds.
func (f *Formatter) StrftimeMs(pattern string, ts TimeStampMs, mode calendar.Mode) (string, error) {
	s, err := f.strftime(pattern, ts.Seconds, mode)
	if err != nil {
		return "", err
	}
	return substituteMillis(pattern, s, ts.millis()), nil
}

// StrftimeMsUTC formats ts in UTC with "{ms}" support.
func (f *Formatter) StrftimeMsUTC(pattern string, ts TimeStampMs) (string, error) {
	return f.StrftimeMs(pattern, ts, calendar.UTC)
}

// StrftimeMsLocal formats ts in the local timezone with "{ms}" support.
func (f *Formatter) StrftimeMsLocal(pattern string, ts TimeStampMs) (string, error) {
	return f.StrftimeMs(pattern, ts, calendar.Local)
}

// Components splits ts into calendar components in the given mode.
func (f *Formatter) Components(ts TimeStamp, mode calendar.Mode) (Components, error) {
	b, err := f.breakdown(ts, mode)
	if err != nil {
		return Components{}, err
	}
	return componentsOf(b), nil
}

// ComponentsUTC splits ts into calendar components in UTC.
func (f *Formatter) ComponentsUTC(ts TimeStamp) (Components, error) {
	return f.Components(ts, calendar.UTC)
}

// ComponentsLocal splits ts into calendar components in the local timezone.
func (f *Formatter) ComponentsLocal(ts TimeStamp) (Components, error) {
	return f.Components(ts, calendar.Local)
}
