package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bids/renderer"
	"github.com/google/subcommands"
)

type displayCmd struct {
	limit int
	lines bool
}

func (*displayCmd) Name() string     { return "display" }
func (*displayCmd) Synopsis() string { return "display the bids in file order" }
func (*displayCmd) Usage() string {
	return `bidsort display [-n <count>] [-lines]

  Displays the bids as read from the CSV file, as a table or one per line.
`
}

func (c *displayCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 0, "Maximum number of bids to display, all by default.")
	f.BoolVar(&c.lines, "lines", false, "Print one 'id: title | amount | fund' line per bid instead of a table.")
}

func (c *displayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := DecodeBids()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.lines {
		for i, b := range list {
			if c.limit > 0 && i >= c.limit {
				break
			}
			fmt.Fprintln(stdout, renderer.BidLine(b))
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(stdout, renderer.BidsMarkdown("Bids", list, c.limit))
	return subcommands.ExitSuccess
}
