package commands

import (
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/timefmt/engine"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List the rendering engines, marking the selected one",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, line := range engineLines(formatter.Engine()) {
			jww.FEEDBACK.Println(line)
		}
	},
}

func engineLines(current string) []string {
	var lines []string
	for _, name := range engine.Names() {
		mark := "  "
		if name == current {
			mark = "* "
		}
		lines = append(lines, mark+name)
	}
	return lines
}
