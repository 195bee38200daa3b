// msbt-cat prints the labelled texts of message bundles.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/arloliu/msbt/cmd/msbt-cat/command"
)

func main() {
	root := command.NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "msbt-cat error: %s\n", err)
		os.Exit(1)
	}
}
