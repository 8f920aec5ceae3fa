// Package calendar breaks UNIX timestamps down into calendar fields the way
// gmtime_r(3) and localtime_r(3) do, and rebuilds timestamps from those
// fields like timegm(3) and mktime(3).
//
// A Breakdown is a plain value copied out of the conversion; nothing is
// cached or shared between calls.
package calendar

import (
	"time"

	"github.com/bytom/timefmt/errors"
)

// Range accepted by the conversion primitives. Outside of it the year offset
// from 1900 no longer fits in a 32-bit int.
const (
	MinTimestamp int64 = -67768040609740800 // -2147481748-01-01T00:00:00Z
	MaxTimestamp int64 = 67768036191676799  // 2147485547-12-31T23:59:59Z
)

// ErrConversion is returned when a timestamp cannot be broken down.
var ErrConversion = errors.New("calendar conversion failed")

// Mode selects the timezone a timestamp is broken down in.
type Mode int

const (
	// UTC breaks timestamps down in Coordinated Universal Time.
	UTC Mode = iota
	// Local breaks timestamps down in the host's configured timezone.
	Local
)

func (m Mode) String() string {
	switch m {
	case UTC:
		return "utc"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// Breakdown holds the calendar fields of one instant. Field ranges follow
// struct tm: Mon is 0-11, Year counts from 1900 and YDay is 0-based.
type Breakdown struct {
	Sec    int    `json:"sec"`
	Min    int    `json:"min"`
	Hour   int    `json:"hour"`
	MDay   int    `json:"mday"`
	Mon    int    `json:"mon"`
	Year   int    `json:"year"`
	WDay   int    `json:"wday"`
	YDay   int    `json:"yday"`
	IsDST  bool   `json:"isdst"`
	GMTOff int    `json:"gmtoff"`
	Zone   string `json:"zone"`
}

// Time returns the instant described by b, in a fixed zone carrying b's
// offset and abbreviation.
func (b Breakdown) Time() time.Time {
	loc := time.UTC
	if b.GMTOff != 0 || b.Zone != "UTC" {
		loc = time.FixedZone(b.Zone, b.GMTOff)
	}
	return time.Date(b.Year+1900, time.Month(b.Mon+1), b.MDay, b.Hour, b.Min, b.Sec, 0, loc)
}

func fromTime(t time.Time) Breakdown {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	zone, offset := t.Zone()
	return Breakdown{
		Sec:    sec,
		Min:    min,
		Hour:   hour,
		MDay:   day,
		Mon:    int(month) - 1,
		Year:   year - 1900,
		WDay:   int(t.Weekday()),
		YDay:   t.YearDay() - 1,
		IsDST:  t.IsDST(),
		GMTOff: offset,
		Zone:   zone,
	}
}

func checkRange(ts int64) error {
	if ts < MinTimestamp || ts > MaxTimestamp {
		return errors.WithDetailf(ErrConversion, "timestamp %d outside [%d, %d]", ts, MinTimestamp, MaxTimestamp)
	}
	return nil
}

// GMTime breaks ts down in UTC.
func GMTime(ts int64) (Breakdown, error) {
	if err := checkRange(ts); err != nil {
		return Breakdown{}, err
	}
	return fromTime(time.Unix(ts, 0).UTC()), nil
}

// Timegm is the inverse of GMTime. Out of range fields are normalized, so
// Mon 12 is January of the following year.
func Timegm(b Breakdown) int64 {
	return time.Date(b.Year+1900, time.Month(b.Mon+1), b.MDay, b.Hour, b.Min, b.Sec, 0, time.UTC).Unix()
}

// Converter breaks timestamps down in a "local" timezone. The zero value
// uses the host's timezone.
type Converter struct {
	Location *time.Location
}

// NewConverter returns a Converter whose local timezone is loc. A nil loc
// means the host's timezone.
func NewConverter(loc *time.Location) *Converter {
	return &Converter{Location: loc}
}

func (c *Converter) location() *time.Location {
	if c == nil || c.Location == nil {
		return time.Local
	}
	return c.Location
}

// LocalTime breaks ts down in the converter's local timezone.
func (c *Converter) LocalTime(ts int64) (Breakdown, error) {
	if err := checkRange(ts); err != nil {
		return Breakdown{}, err
	}
	return fromTime(time.Unix(ts, 0).In(c.location())), nil
}

// Mktime is the inverse of LocalTime. The zone fields of b are ignored and
// the wall clock is interpreted in the converter's timezone; during a DST
// transition the result follows time.Date.
func (c *Converter) Mktime(b Breakdown) int64 {
	return time.Date(b.Year+1900, time.Month(b.Mon+1), b.MDay, b.Hour, b.Min, b.Sec, 0, c.location()).Unix()
}

// Breakdown dispatches to GMTime or LocalTime.
func (c *Converter) Breakdown(ts int64, mode Mode) (Breakdown, error) {
	if mode == Local {
		return c.LocalTime(ts)
	}
	return GMTime(ts)
}
