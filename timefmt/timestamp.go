package timefmt

import (
	"time"

	"github.com/bytom/timefmt/calendar"
	"github.com/bytom/timefmt/errors"
)

// TimeStamp is a UNIX timestamp in seconds.
type TimeStamp = int64

// TimeStampMs is a UNIX timestamp with millisecond precision.
type TimeStampMs struct {
	// Seconds since the UNIX epoch.
	Seconds int64 `json:"seconds"`
	// Milliseconds component (0-999).
	Milliseconds uint16 `json:"milliseconds"`
}

// NewTimeStampMs builds a TimeStampMs, taking milliseconds modulo 1000.
func NewTimeStampMs(seconds int64, milliseconds uint16) TimeStampMs {
	return TimeStampMs{Seconds: seconds, Milliseconds: milliseconds % 1000}
}

// FromTimestamp converts a seconds timestamp, with zero milliseconds.
func FromTimestamp(ts TimeStamp) TimeStampMs {
	return TimeStampMs{Seconds: ts}
}

// FromTotalMilliseconds splits milliseconds since the epoch. Negative values
// round toward negative infinity, so the milliseconds stay in 0-999.
func FromTotalMilliseconds(total int64) TimeStampMs {
	sec, ms := total/1000, total%1000
	if ms < 0 {
		sec--
		ms += 1000
	}
	return TimeStampMs{Seconds: sec, Milliseconds: uint16(ms)}
}

// TotalMilliseconds returns the milliseconds since the UNIX epoch.
func (ts TimeStampMs) TotalMilliseconds() int64 {
	return ts.Seconds*1000 + int64(ts.millis())
}

func (ts TimeStampMs) millis() uint16 {
	return ts.Milliseconds % 1000
}

// FromTime converts t to a seconds timestamp.
func FromTime(t time.Time) (TimeStamp, error) {
	ts := t.Unix()
	if ts < calendar.MinTimestamp || ts > calendar.MaxTimestamp {
		return 0, errors.WithDetailf(ErrInvalidTimestamp, "%d is outside the calendar range", ts)
	}
	return ts, nil
}

// FromTimeMs converts t to a millisecond timestamp, truncating below the
// millisecond.
func FromTimeMs(t time.Time) (TimeStampMs, error) {
	ts, err := FromTime(t)
	if err != nil {
		return TimeStampMs{}, err
	}
	return NewTimeStampMs(ts, uint16(t.Nanosecond()/int(time.Millisecond))), nil
}
