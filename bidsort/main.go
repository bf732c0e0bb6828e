// Command bidsort loads bids from a CSV export and sorts them by title.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bids/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when invoked by the shell for completion.
	cmd.Completion().Complete("bidsort")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Setup()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
