package commands

import (
	"strings"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timefmt/calendar"
	"github.com/bytom/timefmt/timefmt"
)

var (
	formatMs  = false
	presetMs  = false
	isoMs     = false
	listEvery = false
)

func init() {
	formatCmd.Flags().BoolVar(&formatMs, "ms", false, "Replace {ms} with the milliseconds of the timestamp")
	presetCmd.Flags().BoolVar(&presetMs, "ms", false, "Include milliseconds where the format has them")
	iso8601Cmd.Flags().BoolVar(&isoMs, "ms", false, "Include milliseconds")
	presetCmd.Flags().BoolVar(&listEvery, "all", false, "Print the timestamp in every common format")
}

var formatCmd = &cobra.Command{
	Use:   "format <pattern> [timestamp]",
	Short: "Format a timestamp with a strftime pattern",
	Long: `Format a timestamp with a strftime pattern. The timestamp is seconds since
the epoch, optionally followed by up to three fractional digits, and defaults
to now. With --ms every "{ms}" in the pattern becomes the milliseconds.`,
	Example: `  timefmt format "%Y-%m-%d %H:%M:%S" 1673793045
  timefmt format --ms "%H:%M:%S.{ms}" 1673793045.678`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ts, err := timestampArg(args, 1)
		exitOnError(err)

		s, err := runFormat(formatter, args[0], ts, formatMs, mode())
		exitOnError(err)
		jww.FEEDBACK.Println(s)
	},
}

func runFormat(f *timefmt.Formatter, pattern string, ts timefmt.TimeStampMs, ms bool, mode calendar.Mode) (string, error) {
	if ms {
		return f.StrftimeMs(pattern, ts, mode)
	}
	return f.Strftime(pattern, ts.Seconds, mode)
}

var presetCmd = &cobra.Command{
	Use:   "preset <name|default> [timestamp]",
	Short: "Format a timestamp with a common date format",
	Long: `Format a timestamp with a named date format. "default" selects the preset of
the config file, and "custom:<pattern>" any strftime pattern.

Names: ` + strings.Join(timefmt.PresetNames(), ", "),
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if listEvery {
			ts, err := timestampArg(args, 0)
			exitOnError(err)
			for _, name := range timefmt.PresetNames() {
				s, err := runPreset(formatter, name, ts, presetMs, mode())
				exitOnError(err)
				jww.FEEDBACK.Printf("%-10s %s\n", name, s)
			}
			return
		}

		if len(args) == 0 {
			exitOnError(newUserError("preset needs a format name"))
		}
		ts, err := timestampArg(args, 1)
		exitOnError(err)

		s, err := runPreset(formatter, args[0], ts, presetMs, mode())
		exitOnError(err)
		jww.FEEDBACK.Println(s)
	},
}

func runPreset(f *timefmt.Formatter, name string, ts timefmt.TimeStampMs, ms bool, mode calendar.Mode) (string, error) {
	if name == "default" {
		name = config.Format.Preset
	}
	d, err := timefmt.ParseDateFormat(name)
	if err != nil {
		return "", err
	}
	if ms {
		return f.FormatCommonMs(ts, d, mode)
	}
	return f.FormatCommon(ts.Seconds, d, mode)
}

var iso8601Cmd = &cobra.Command{
	Use:   "iso8601 [timestamp]",
	Short: "Format a timestamp as ISO 8601",
	Args:  cobra.RangeArgs(0, 1),
	Run: func(cmd *cobra.Command, args []string) {
		ts, err := timestampArg(args, 0)
		exitOnError(err)

		s, err := runISO8601(formatter, ts, isoMs, mode())
		exitOnError(err)
		jww.FEEDBACK.Println(s)
	},
}

func runISO8601(f *timefmt.Formatter, ts timefmt.TimeStampMs, ms bool, mode calendar.Mode) (string, error) {
	switch {
	case ms && mode == calendar.UTC:
		return f.FormatISO8601MsUTC(ts)
	case ms:
		return f.FormatISO8601MsLocal(ts)
	case mode == calendar.UTC:
		return f.FormatISO8601UTC(ts.Seconds)
	default:
		return f.FormatISO8601Local(ts.Seconds)
	}
}
