package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bids"
	"github.com/etnz/bids/renderer"
	"github.com/google/subcommands"
)

type loadCmd struct{}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "load the bids and report how long it took" }
func (*loadCmd) Usage() string {
	return `bidsort [-csv-path <file>] load

  Loads the bids from the CSV file and reports their number and the time it
  took to read them.
`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var list []bids.Bid
	var err error
	timing := renderer.Measure("Loading bids", 0, func() {
		list, err = DecodeBids()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	timing.Count = len(list)

	printMarkdown(stdout, renderer.TimingMarkdown(timing))
	return subcommands.ExitSuccess
}
