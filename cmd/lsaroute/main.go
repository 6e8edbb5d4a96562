// lsaroute - link-state shortest path command-line tool.
package main

import (
	"os"

	"github.com/katalvlaran/lsaroute/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
