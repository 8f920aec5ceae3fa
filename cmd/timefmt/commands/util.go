package commands

import (
	stdjson "encoding/json"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timefmt/timefmt"
)

// parseTimestamp reads "sec" or "sec.fff", where the fraction holds at most
// three digits of milliseconds.
func parseTimestamp(arg string) (timefmt.TimeStampMs, error) {
	sec, frac := arg, ""
	if i := strings.IndexByte(arg, '.'); i >= 0 {
		sec, frac = arg[:i], arg[i+1:]
	}

	seconds, err := parseInt(sec)
	if err != nil {
		return timefmt.TimeStampMs{}, newUserError("invalid timestamp", arg)
	}
	if frac == "" {
		return timefmt.TimeStampMs{Seconds: seconds}, nil
	}

	if len(frac) > 3 || strings.HasPrefix(frac, "-") {
		return timefmt.TimeStampMs{}, newUserError("invalid timestamp", arg, "(at most three fractional digits)")
	}
	ms, err := parseInt((frac + "00")[:3])
	if err != nil {
		return timefmt.TimeStampMs{}, newUserError("invalid timestamp", arg)
	}
	if seconds > math.MaxInt64/1000-1 || seconds < math.MinInt64/1000+1 {
		return timefmt.TimeStampMs{}, newUserError("timestamp out of range", arg)
	}

	total := seconds * 1000
	if strings.HasPrefix(sec, "-") {
		total -= ms
	} else {
		total += ms
	}
	return timefmt.FromTotalMilliseconds(total), nil
}

// parseInt parses a base 10 integer. Leading zeros are not an octal prefix.
func parseInt(s string) (int64, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, newUserError("not a decimal integer:", s)
	}
	if digits = strings.TrimLeft(digits, "0"); digits == "" {
		digits = "0"
	}

	v, err := cast.ToInt64E(digits)
	if err != nil {
		return 0, err
	}
	if strings.HasPrefix(s, "-") {
		v = -v
	}
	return v, nil
}

// timestampArg returns the timestamp at args[i], or the current time.
func timestampArg(args []string, i int) (timefmt.TimeStampMs, error) {
	if len(args) > i {
		return parseTimestamp(args[i])
	}
	return formatter.NowMs()
}

func printJSON(data interface{}) {
	rawData, err := stdjson.MarshalIndent(data, "", "  ")
	if err != nil {
		jww.ERROR.Println(err)
		os.Exit(ErrLocalParse)
	}

	jww.FEEDBACK.Println(string(rawData))
}

func exitOnError(err error) {
	if err != nil {
		jww.ERROR.Println(err)
		os.Exit(ErrLocalExe)
	}
}
