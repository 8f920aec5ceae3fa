// Package timefmt formats UNIX timestamps with strftime patterns and splits
// them into calendar components, in UTC or in the local timezone.
//
// Patterns use the strftime(3) conversions. The millisecond variants also
// replace the text "{ms}" with the zero padded milliseconds:
//
//	s, err := timefmt.StrftimeMsUTC("%Y-%m-%d %H:%M:%S.{ms}", timefmt.NewTimeStampMs(1673793045, 678))
//	// "2023-01-15 14:30:45.678"
//
// The package level functions use Default. Build a Formatter with New to
// pick another engine, clock or local timezone.
package timefmt

// Now returns the current UNIX timestamp in seconds.
func Now() (TimeStamp, error) { return std.Now() }

// NowMs returns the current UNIX timestamp with millisecond precision.
func NowMs() (TimeStampMs, error) { return std.NowMs() }

// ComponentsUTC splits ts into calendar components in UTC.
func ComponentsUTC(ts TimeStamp) (Components, error) { return std.ComponentsUTC(ts) }

// ComponentsLocal splits ts into calendar components in the local timezone.
func ComponentsLocal(ts TimeStamp) (Components, error) { return std.ComponentsLocal(ts) }

// StrftimeUTC formats ts in UTC.
func StrftimeUTC(pattern string, ts TimeStamp) (string, error) {
	return std.StrftimeUTC(pattern, ts)
}

// StrftimeLocal formats ts in the local timezone.
func StrftimeLocal(pattern string, ts TimeStamp) (string, error) {
	return std.StrftimeLocal(pattern, ts)
}

// StrftimeMsUTC formats ts in UTC, replacing "{ms}" with the milliseconds.
func StrftimeMsUTC(pattern string, ts TimeStampMs) (string, error) {
	return std.StrftimeMsUTC(pattern, ts)
}

// StrftimeMsLocal formats ts in the local timezone, replacing "{ms}" with
// the milliseconds.
func StrftimeMsLocal(pattern string, ts TimeStampMs) (string, error) {
	return std.StrftimeMsLocal(pattern, ts)
}

// FormatISO8601UTC formats ts as "2025-05-20T14:30:45Z".
func FormatISO8601UTC(ts TimeStamp) (string, error) { return std.FormatISO8601UTC(ts) }

// FormatISO8601MsUTC formats ts as "2025-05-20T14:30:45.123Z".
func FormatISO8601MsUTC(ts TimeStampMs) (string, error) { return std.FormatISO8601MsUTC(ts) }

// FormatISO8601Local formats ts as "2025-05-20T09:30:45-05:00".
func FormatISO8601Local(ts TimeStamp) (string, error) { return std.FormatISO8601Local(ts) }

// FormatISO8601MsLocal formats ts as "2025-05-20T09:30:45.123-05:00".
func FormatISO8601MsLocal(ts TimeStampMs) (string, error) { return std.FormatISO8601MsLocal(ts) }

// FormatCommonUTC formats ts with a common date format in UTC.
func FormatCommonUTC(ts TimeStamp, d DateFormat) (string, error) {
	return std.FormatCommonUTC(ts, d)
}

// FormatCommonLocal formats ts with a common date format in the local
// timezone. HTTP dates are still rendered in UTC.
func FormatCommonLocal(ts TimeStamp, d DateFormat) (string, error) {
	return std.FormatCommonLocal(ts, d)
}

// FormatCommonMsUTC formats ts with a common date format in UTC, including
// milliseconds where the format has them.
func FormatCommonMsUTC(ts TimeStampMs, d DateFormat) (string, error) {
	return std.FormatCommonMsUTC(ts, d)
}

// FormatCommonMsLocal formats ts with a common date format in the local
// timezone, including milliseconds where the format has them.
func FormatCommonMsLocal(ts TimeStampMs, d DateFormat) (string, error) {
	return std.FormatCommonMsLocal(ts, d)
}
