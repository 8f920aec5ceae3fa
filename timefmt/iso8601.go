package timefmt

const (
	iso8601UTC     = "%Y-%m-%dT%H:%M:%SZ"
	iso8601MsUTC   = "%Y-%m-%dT%H:%M:%S.{ms}Z"
	iso8601Local   = "%Y-%m-%dT%H:%M:%S%z"
	iso8601MsLocal = "%Y-%m-%dT%H:%M:%S.{ms}%z"
)

// FormatISO8601UTC formats ts as YYYY-MM-DDThh:mm:ssZ, e.g.
// "2025-05-20T14:30:45Z".
func (f *Formatter) FormatISO8601UTC(ts TimeStamp) (string, error) {
	return f.StrftimeUTC(iso8601UTC, ts)
}

// FormatISO8601MsUTC formats ts as YYYY-MM-DDThh:mm:ss.sssZ, e.g.
// "2025-05-20T14:30:45.123Z".
func (f *Formatter) FormatISO8601MsUTC(ts TimeStampMs) (string, error) {
	return f.StrftimeMsUTC(iso8601MsUTC, ts)
}

// FormatISO8601Local formats ts as YYYY-MM-DDThh:mm:ss±hh:mm in the local
// timezone, e.g. "2025-05-20T09:30:45-05:00".
func (f *Formatter) FormatISO8601Local(ts TimeStamp) (string, error) {
	s, err := f.StrftimeLocal(iso8601Local, ts)
	if err != nil {
		return "", err
	}
	return insertOffsetColon(s), nil
}

// FormatISO8601MsLocal formats ts as YYYY-MM-DDThh:mm:ss.sss±hh:mm in the
// local timezone, e.g. "2025-05-20T09:30:45.123-05:00".
func (f *Formatter) FormatISO8601MsLocal(ts TimeStampMs) (string, error) {
	s, err := f.StrftimeMsLocal(iso8601MsLocal, ts)
	if err != nil {
		return "", err
	}
	return insertOffsetColon(s), nil
}
