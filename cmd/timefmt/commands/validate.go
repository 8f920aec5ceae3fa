package commands

import (
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timefmt/timefmt"
)

var validateCmd = &cobra.Command{
	Use:   "validate <pattern>",
	Short: "Check a strftime pattern for common mistakes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(timefmt.Validate(args[0]))
		jww.FEEDBACK.Println("ok")
	},
}
