package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timefmt/timefmt"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current timestamp in seconds and milliseconds",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := runNow(formatter)
		exitOnError(err)
		jww.FEEDBACK.Println(s)
	},
}

func runNow(f *timefmt.Formatter) (string, error) {
	ts, err := f.NowMs()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d", ts.Seconds, ts.TotalMilliseconds()), nil
}
