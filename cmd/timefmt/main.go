package main

import (
	"github.com/bytom/timefmt/cmd/timefmt/commands"
)

func main() {
	commands.Execute()
}
