package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"gopkg.in/yaml.v2"

	"github.com/bytom/timefmt/calendar"
	"github.com/bytom/timefmt/timefmt"
)

var componentsOutput = "json"

func init() {
	componentsCmd.Flags().StringVarP(&componentsOutput, "output", "o", componentsOutput, "Output encoding (json or yaml)")
}

type componentsResp struct {
	Timestamp          int64  `json:"timestamp" yaml:"timestamp"`
	Mode               string `json:"mode" yaml:"mode"`
	timefmt.Components `yaml:",inline"`
}

var componentsCmd = &cobra.Command{
	Use:   "components [timestamp]",
	Short: "Print the calendar components of a timestamp as JSON or YAML",
	Args:  cobra.RangeArgs(0, 1),
	Run: func(cmd *cobra.Command, args []string) {
		ts, err := timestampArg(args, 0)
		exitOnError(err)

		resp, err := runComponents(formatter, ts.Seconds, mode())
		exitOnError(err)

		switch strings.ToLower(componentsOutput) {
		case "json":
			printJSON(resp)
		case "yaml":
			data, err := printYAML(resp)
			if err != nil {
				jww.ERROR.Println(err)
				os.Exit(ErrLocalParse)
			}
			jww.FEEDBACK.Print(data)
		default:
			exitOnError(newUserError("unknown output encoding", componentsOutput))
		}
	},
}

func runComponents(f *timefmt.Formatter, ts timefmt.TimeStamp, mode calendar.Mode) (*componentsResp, error) {
	c, err := f.Components(ts, mode)
	if err != nil {
		return nil, err
	}
	return &componentsResp{Timestamp: ts, Mode: mode.String(), Components: c}, nil
}

func printYAML(data interface{}) (string, error) {
	rawData, err := yaml.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(rawData), nil
}
