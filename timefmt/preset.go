package timefmt

import (
	"strings"

	"github.com/bytom/timefmt/calendar"
	"github.com/bytom/timefmt/errors"
)

type presetKind int

const (
	kindCustom presetKind = iota
	kindRFC3339
	kindRFC2822
	kindHTTP
	kindSQL
	kindUS
	kindEuropean
	kindShortDate
	kindLongDate
	kindShortTime
	kindLongTime
	kindDateTime
)

type preset struct {
	name      string
	pattern   string
	msPattern string
}

var presets = map[presetKind]preset{
	kindRFC3339:   {"RFC3339", "%Y-%m-%dT%H:%M:%S%z", "%Y-%m-%dT%H:%M:%S.{ms}%z"},
	kindRFC2822:   {"RFC2822", "%a, %d %b %Y %H:%M:%S %z", ""},
	kindHTTP:      {"HTTP", "%a, %d %b %Y %H:%M:%S GMT", ""},
	kindSQL:       {"SQL", "%Y-%m-%d %H:%M:%S", "%Y-%m-%d %H:%M:%S.{ms}"},
	kindUS:        {"US", "%m/%d/%Y %I:%M:%S %p", ""},
	kindEuropean:  {"European", "%d/%m/%Y %H:%M:%S", ""},
	kindShortDate: {"ShortDate", "%m/%d/%y", ""},
	kindLongDate:  {"LongDate", "%A, %B %d, %Y", ""},
	kindShortTime: {"ShortTime", "%H:%M", ""},
	kindLongTime:  {"LongTime", "%H:%M:%S", "%H:%M:%S.{ms}"},
	kindDateTime:  {"DateTime", "%Y-%m-%d %H:%M:%S", "%Y-%m-%d %H:%M:%S.{ms}"},
}

// DateFormat is a named date pattern, or a custom one.
type DateFormat struct {
	kind    presetKind
	pattern string
}

// Common date formats.
var (
	// RFC3339: "2025-05-20T14:30:45+00:00" or "2025-05-20T14:30:45-05:00".
	RFC3339 = DateFormat{kind: kindRFC3339}
	// RFC2822: "Tue, 20 May 2025 14:30:45 -0500".
	RFC2822 = DateFormat{kind: kindRFC2822}
	// HTTP (RFC 7231): "Tue, 20 May 2025 14:30:45 GMT", always in UTC.
	HTTP = DateFormat{kind: kindHTTP}
	// SQL: "2025-05-20 14:30:45".
	SQL = DateFormat{kind: kindSQL}
	// US: "05/20/2025 02:30:45 PM".
	US = DateFormat{kind: kindUS}
	// European: "20/05/2025 14:30:45".
	European = DateFormat{kind: kindEuropean}
	// ShortDate: "05/20/25".
	ShortDate = DateFormat{kind: kindShortDate}
	// LongDate: "Tuesday, May 20, 2025".
	LongDate = DateFormat{kind: kindLongDate}
	// ShortTime: "14:30".
	ShortTime = DateFormat{kind: kindShortTime}
	// LongTime: "14:30:45".
	LongTime = DateFormat{kind: kindLongTime}
	// DateTime: "2025-05-20 14:30:45".
	DateTime = DateFormat{kind: kindDateTime}
)

// Custom wraps an arbitrary pattern.
func Custom(pattern string) DateFormat {
	return DateFormat{kind: kindCustom, pattern: pattern}
}

// Pattern returns the pattern used for seconds timestamps.
func (d DateFormat) Pattern() string {
	if d.kind == kindCustom {
		return d.pattern
	}
	return presets[d.kind].pattern
}

// MsPattern returns the pattern used for millisecond timestamps. Formats
// that do not show milliseconds use their plain pattern.
func (d DateFormat) MsPattern() string {
	if p := presets[d.kind].msPattern; d.kind != kindCustom && p != "" {
		return p
	}
	return d.Pattern()
}

func (d DateFormat) String() string {
	if d.kind == kindCustom {
		return "Custom(" + d.pattern + ")"
	}
	return presets[d.kind].name
}

// PresetNames lists the names accepted by ParseDateFormat, besides
// "custom:<pattern>".
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for kind := kindRFC3339; kind <= kindDateTime; kind++ {
		names = append(names, presets[kind].name)
	}
	return names
}

// ParseDateFormat looks a format up by name, ignoring case. "custom:<p>"
// yields Custom(p).
func ParseDateFormat(name string) (DateFormat, error) {
	if len(name) > len("custom:") && strings.EqualFold(name[:len("custom:")], "custom:") {
		return Custom(name[len("custom:"):]), nil
	}
	for kind, p := range presets {
		if strings.EqualFold(p.name, name) {
			return DateFormat{kind: kind}, nil
		}
	}
	return DateFormat{}, errors.WithDetailf(ErrInvalidFormatString, "unknown date format %q", name)
}

// FormatCommon formats ts with d in the given mode. HTTP dates are always
// rendered in UTC, and RFC3339 gets a colon in its offset.
func (f *Formatter) FormatCommon(ts TimeStamp, d DateFormat, mode calendar.Mode) (string, error) {
	if d.kind == kindHTTP {
		mode = calendar.UTC
	}
	s, err := f.Strftime(d.Pattern(), ts, mode)
	if err != nil {
		return "", err
	}
	if d.kind == kindRFC3339 {
		s = insertOffsetColon(s)
	}
	return s, nil
}

// FormatCommonMs is FormatCommon for millisecond timestamps. RFC3339, SQL,
// DateTime and LongTime include the milliseconds.
func (f *Formatter) FormatCommonMs(ts TimeStampMs, d DateFormat, mode calendar.Mode) (string, error) {
	if d.kind == kindHTTP {
		mode = calendar.UTC
	}
	s, err := f.StrftimeMs(d.MsPattern(), ts, mode)
	if err != nil {
		return "", err
	}
	if d.kind == kindRFC3339 {
		s = insertOffsetColon(s)
	}
	return s, nil
}

// FormatCommonUTC formats ts with d in UTC.
func (f *Formatter) FormatCommonUTC(ts TimeStamp, d DateFormat) (string, error) {
	return f.FormatCommon(ts, d, calendar.UTC)
}

// FormatCommonLocal formats ts with d in the local timezone.
func (f *Formatter) FormatCommonLocal(ts TimeStamp, d DateFormat) (string, error) {
	return f.FormatCommon(ts, d, calendar.Local)
}

// FormatCommonMsUTC formats ts with d in UTC.
func (f *Formatter) FormatCommonMsUTC(ts TimeStampMs, d DateFormat) (string, error) {
	return f.FormatCommonMs(ts, d, calendar.UTC)
}

// FormatCommonMsLocal formats ts with d in the local timezone.
func (f *Formatter) FormatCommonMsLocal(ts TimeStampMs, d DateFormat) (string, error) {
	return f.FormatCommonMs(ts, d, calendar.Local)
}
